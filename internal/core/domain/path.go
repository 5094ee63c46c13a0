package domain

import (
	"path/filepath"
	"strings"
)

const separators = "/" + string(filepath.Separator)

// OutputPath returns outputPath when set, otherwise the input path with
// suffix inserted before its extension.
func OutputPath(inputPath, outputPath, suffix string) string {
	if outputPath != "" {
		return outputPath
	}

	base, ext := SplitExt(inputPath)
	return base + suffix + ext
}

// DefaultOutputPath derives the output path using DefaultSuffix.
func DefaultOutputPath(inputPath string) string {
	return OutputPath(inputPath, "", DefaultSuffix)
}

// SplitExt splits path into a base and an extension. The extension starts at
// the last dot of the final path segment; leading dots of that segment never
// start an extension, so ".bashrc" has none.
func SplitExt(path string) (string, string) {
	segment := strings.LastIndexAny(path, separators) + 1

	dot := strings.LastIndex(path, ".")
	if dot <= segment {
		return path, ""
	}

	if strings.Trim(path[segment:dot], ".") == "" {
		return path, ""
	}

	return path[:dot], path[dot:]
}
