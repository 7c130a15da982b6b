package report

// DeepMerge merges src into dst and returns dst. When both sides hold a
// map under the same key the maps merge recursively; any other value is
// overwritten by src. dst may be nil.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = map[string]any{}
	}
	for k, v := range src {
		if sm, ok := v.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				dst[k] = DeepMerge(dm, sm)
				continue
			}
		}
		dst[k] = v
	}
	return dst
}
