// Package serializer renders snapshot values to JSON, YAML, or an aligned
// table, writing to stdout, a file, or any io.Writer.
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(report); err != nil {
//		return err
//	}
//
// For HTTP responses use RespondJSON, which buffers the encoding so a
// failure never produces a partial body.
package serializer

// Serializer renders a value to the configured destination.
type Serializer interface {
	Serialize(v any) error
}
