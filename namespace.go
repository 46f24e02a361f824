package nscache

// Separator joins a namespace and a key into the composite key used by the
// store.
const Separator = ":"

// compositeKey builds the store key. With no namespace the key is used
// verbatim.
//
// The separator is not escaped: a namespace or key that itself contains ":"
// can alias another composite key. That is the documented contract of the
// codec, kept deliberately simple; callers who need isolation must keep the
// separator out of their namespaces.
func compositeKey(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + Separator + key
}
