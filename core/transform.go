package core

// Transformer mutates a Chat in place.
type Transformer interface {
	Transform(c *Chat) error
}

// Chain applies transformers in order, stopping at the first error.
func Chain(c *Chat, transformers ...Transformer) error {
	for _, tr := range transformers {
		if err := tr.Transform(c); err != nil {
			return err
		}
	}
	return nil
}
