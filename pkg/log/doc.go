// Package log provides the logging abstraction used across framebooth.
//
// Components depend on the Logger interface only. A zerolog-backed
// implementation is provided for the service and a no-op logger for tests
// and for embedding the booth without output.
//
//	logger := log.NewZerologAdapter()
//	logger.Info("printed", log.String("printer", "selphy_1"), log.String("file", name))
package log
