package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Function variables for dependency injection in tests.
var (
	confirmOverwrite = defaultConfirmOverwrite
	now              = time.Now
)

// WriteValues writes generated values content to outputPath with a
// descriptive header. source names where the answers came from.
func WriteValues(content, outputPath, source string) error {
	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath, source))
	sb.WriteString("\n")
	sb.WriteString(content)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// generateHeader creates the values file header comment.
func generateHeader(outputPath, source string) string {
	if source == "" {
		source = "interactive wizard"
	}
	return fmt.Sprintf(`# Camunda 8 Helm values
# Generated by: c8values
# Generated at: %s
# Answers: %s
#
# Usage:
#   helm repo add camunda https://helm.camunda.io
#   helm install camunda camunda/camunda-platform -f %s
`, now().Format(time.RFC3339), source, outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

// defaultConfirmOverwrite is the default implementation that prompts via stdin.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
