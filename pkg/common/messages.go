package common

import (
	"fmt"
	"log"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Error messages
const (
	ErrFailedToLoadImage        = "failed to load input image"
	ErrFailedToDecodeImage      = "failed to decode input image"
	ErrFailedToCreateOutputFile = "failed to create output file"
	ErrFailedToEncodeIndexes    = "failed to encode index data"
	ErrFailedToEncodeColors     = "failed to encode color data"
	ErrFailedToEncodePalette    = "failed to encode palette"
	ErrFailedToReadIndexData    = "failed to read index data"
	ErrFailedToRenderIndexes    = "failed to render index data"
	ErrFailedToWritePNG         = "failed to write PNG"
	ErrFailedToLoadManifest     = "failed to load palette manifest"
	ErrFailedToParseManifest    = "failed to parse palette manifest"
	ErrFailedToWriteManifest    = "failed to write palette manifest"
	ErrFailedToReadPalette      = "failed to read palette data"
	ErrUnknownFormat            = "unknown graphics format"
	ErrUnknownClut              = "unknown stock palette"
	ErrInvalidColorValue        = "invalid color value"
	ErrInvalidTileSize          = "invalid tile size"
	ErrInvalidMaxcol            = "invalid maximum index value"
	ErrInvalidImageSize         = "invalid image size"
	ErrInvalidIndexDataLength   = "invalid index data length"
	ErrOddPaletteSize           = "palette data is not a whole number of color words"
)

// Info messages
const (
	InfoEncodedGraphics = "Encoded %s as %s to: %s"
	InfoPaletteWritten  = "Palette written to: %s"
	InfoDecodedGraphics = "Rendered %d indexes to: %s"
	InfoManifestWritten = "Palette manifest written to: %s"
)

// Debug messages
const (
	DebugImageLoaded   = "Loaded image %s: %dx%d pixels"
	DebugPaletteSize   = "Palette resolved with %d colors"
	DebugIndexCount    = "Produced %d tile-ordered indexes"
	DebugDerivedCanvas = "Derived canvas size: %dx%d"
)

// Warning messages
const (
	WarnPaletteTruncated  = "Palette has %d colors, truncating to the format limit of %d"
	WarnTransparentPixels = "Image has %d transparent pixels; they map to index 0"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}

// FormatErrorString creates a formatted error with string details
func FormatErrorString(baseMessage, details string, args ...interface{}) error {
	if len(args) > 0 {
		return fmt.Errorf("%s: "+details, append([]interface{}{baseMessage}, args...)...)
	}
	return fmt.Errorf("%s: %s", baseMessage, details)
}
