package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog             = fmt.Errorf("catalog has no intents")
	ErrDuplicateTag             = fmt.Errorf("duplicate intent tag")
	ErrMissingResponses         = fmt.Errorf("static intent has no responses")
	ErrUnsupportedCatalogFormat = fmt.Errorf("unsupported catalog format")
	ErrEmptyVocabulary          = fmt.Errorf("no words have been found")
	ErrFeatureWidth             = fmt.Errorf("feature vector width does not match the model")
	ErrUnknownLabel             = fmt.Errorf("label is not part of the label set")
	ErrNoSamples                = fmt.Errorf("no training samples")
	ErrArtifactsNotFound        = fmt.Errorf("no trained artifacts found")
	ErrArtifactMismatch         = fmt.Errorf("artifacts do not belong to the same training run")
	ErrMalformedModel           = fmt.Errorf("model layers are inconsistent")
	ErrCityNotFound             = fmt.Errorf("city not found")
	ErrUnexpectedStatus         = fmt.Errorf("unexpected status code")
	ErrMalformedPayload         = fmt.Errorf("malformed provider payload")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
