package utils

// MustSliceConvert maps srcS through convert.
func MustSliceConvert[S any, D any](srcS []S, convert func(src S) D) []D {
	res := make([]D, 0, len(srcS))
	for i := range srcS {
		res = append(res, convert(srcS[i]))
	}
	return res
}

// SliceContains reports whether v is present in arr.
func SliceContains[T comparable](arr []T, v T) bool {
	for _, vv := range arr {
		if vv == v {
			return true
		}
	}
	return false
}
