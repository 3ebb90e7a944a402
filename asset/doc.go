// Package asset implements the atlas asset metadata resolution engine.
//
// An asset is a named artifact (a model, dataset, or tokenizer) described
// by metadata rather than embedded in code. Metadata records live in
// providers (YAML directories on disk, or card files bundled with the
// binary) and are resolved by a Store into immutable asset cards.
//
// Resolution is layered: user-scope providers take precedence over global
// ones, environment-specific records ("name@env") overlay the base record
// field by field, and a "base" field chains a card to its parent. The
// result of Store.RetrieveCard is deterministic for a fixed provider and
// environment configuration.
package asset
