package asset

// Card is the resolved, merged metadata record for one asset. A card is
// immutable once built and may link to a parent card reached through the
// record's "base" field. Cards are constructed fresh on every
// Store.RetrieveCard call; NewCard exists for direct construction from a
// raw record, mainly in tests.
type Card struct {
	metadata Metadata
	base     *Card
}

// NewCard wraps an already-merged metadata record and an optional parent
// card. The card takes ownership of the given metadata; callers must not
// mutate it afterwards.
func NewCard(metadata Metadata, base *Card) *Card {
	return &Card{metadata: metadata, base: base}
}

// Name returns the asset name of the card.
func (c *Card) Name() string {
	if name, ok := c.metadata[FieldName].(string); ok {
		return name
	}
	return ""
}

// Base returns the parent card, or nil if the card has no base chain.
func (c *Card) Base() *Card {
	return c.base
}

// Metadata returns a copy of the card's own merged metadata, without the
// parent chain flattened in.
func (c *Card) Metadata() Metadata {
	return c.metadata.Copy()
}

// Field returns an accessor for the given metadata field. Lookup checks
// the card's own metadata first and then walks the base chain; a miss at
// the root yields an accessor whose extraction methods fail with a
// card-content error naming this card, not the ancestor where the search
// bottomed out.
func (c *Card) Field(key string) *Field {
	return c.lookup(key, c.Name())
}

func (c *Card) lookup(key, origin string) *Field {
	if value, ok := c.metadata[key]; ok {
		return &Field{card: origin, key: key, value: value}
	}
	if c.base != nil {
		return c.base.lookup(key, origin)
	}
	return &Field{
		card: origin,
		key:  key,
		err:  NewCardError(origin, "the field '%s' does not exist", key),
	}
}

// source returns the provenance tag of the card's own record, without
// consulting the base chain.
func (c *Card) source() string {
	if source, ok := c.metadata[FieldSource].(string); ok {
		return source
	}
	return "unknown source"
}
