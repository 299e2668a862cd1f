package main

import "testing"

func TestLanguagesCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"languages"}, "")
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	requireContains(t, out, "Arabic (ar-SA)")
	requireContains(t, out, "English (en-US)")
	requireContains(t, out, "ara")
}
