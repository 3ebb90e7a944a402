package asset

import (
	"github.com/teranos/atlas/errors"
)

// Sentinel errors for the asset resolution taxonomy.
// Use these with errors.Is() for type-safe error checking; constructors
// below attach them via errors.Mark so messages stay descriptive.
var (
	// ErrNotFound indicates the requested asset name is absent from every
	// searched provider. Recoverable: the store swallows it during
	// per-environment probing.
	ErrNotFound = errors.New("asset not found")

	// ErrCardContent indicates a resolved card is unusable: a field is
	// missing, has the wrong type, or a 'base' reference is malformed.
	ErrCardContent = errors.New("invalid asset card content")

	// ErrConfiguration indicates a metadata source itself is malformed
	// (duplicate names, missing mandatory fields, unparseable files).
	ErrConfiguration = errors.New("invalid asset metadata source")

	// ErrInvalidArgument indicates a caller-supplied argument is invalid,
	// such as an asset name containing the reserved '@' character.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NewNotFoundError creates a not-found error for the given asset name.
func NewNotFoundError(name string) error {
	return errors.Mark(errors.Newf("an asset with the name '%s' cannot be found", name), ErrNotFound)
}

// NewCardError creates a card-content error attributed to the named card.
func NewCardError(card string, format string, args ...interface{}) error {
	err := errors.Newf(format, args...)
	return errors.Mark(errors.Wrapf(err, "asset card '%s'", card), ErrCardContent)
}

// NewConfigurationError creates a configuration error attributed to the
// named metadata source.
func NewConfigurationError(source string, format string, args ...interface{}) error {
	err := errors.Newf(format, args...)
	return errors.Mark(errors.Wrapf(err, "asset metadata source '%s'", source), ErrConfiguration)
}

// NewInvalidArgumentError creates an invalid-argument error.
func NewInvalidArgumentError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}

// IsNotFound checks if an error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// IsCardError checks if an error is or wraps ErrCardContent.
func IsCardError(err error) bool {
	return err != nil && errors.Is(err, ErrCardContent)
}

// IsConfigurationError checks if an error is or wraps ErrConfiguration.
func IsConfigurationError(err error) bool {
	return err != nil && errors.Is(err, ErrConfiguration)
}

// IsInvalidArgument checks if an error is or wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return err != nil && errors.Is(err, ErrInvalidArgument)
}
