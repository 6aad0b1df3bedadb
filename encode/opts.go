package encode

type EncodeOption func(*EncState)

// Depth indents the whole output by n extra tabs.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors enables ANSI colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
