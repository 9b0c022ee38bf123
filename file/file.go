/*
File    : minilang/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package file reads source text off disk for the file-mode shell;
// loading is kept out of the interpreter core on purpose.
package file

import (
	"fmt"
	"os"
)

// Load reads the file at path and returns its contents as source text
// ready for driver.Run, or a wrapped os error if it cannot be read.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %q: %w", path, err)
	}
	return string(data), nil
}
