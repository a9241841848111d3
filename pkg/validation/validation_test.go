package validation

import (
	"strings"
	"testing"
)

func TestValidateRecordID(t *testing.T) {
	tests := []struct {
		name     string
		recordID string
		wantErr  bool
	}{
		// Valid record IDs
		{"valid alphanumeric", "record123", false},
		{"valid with dash", "patient-0042", false},
		{"valid with underscore", "patient_0042", false},
		{"valid with dot", "patient.0042.v2", false},
		{"valid mixed", "rec-prod_v1.2", false},
		{"valid single char", "a", false},
		{"valid numbers only", "12345", false},

		// Invalid record IDs
		{"empty string", "", true},
		{"null byte", "record\x00name", true},
		{"path traversal double dot", "../record", true},
		{"path traversal with slash", "../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"absolute path unix", "/etc/passwd", true},
		{"absolute path windows", "C:\\Windows\\System32", true},
		{"control character", "record\nname", true},
		{"control character tab", "record\tname", true},
		{"special char space", "my record", true},
		{"special char semicolon", "record;name", true},
		{"special char pipe", "record|name", true},
		{"special char ampersand", "record&name", true},
		{"special char dollar", "record$name", true},
		{"special char backtick", "record`name", true},
		{"special char quote", "record'name", true},
		{"special char doublequote", "record\"name", true},
		{"special char asterisk", "record*name", true},
		{"special char question", "record?name", true},
		{"special char bracket", "record[name]", true},
		{"special char paren", "record(name)", true},
		{"special char brace", "record{name}", true},
		{"special char at", "record@name", true},
		{"special char hash", "record#name", true},
		{"special char percent", "record%name", true},
		{"special char caret", "record^name", true},
		{"too long", strings.Repeat("a", 256), true},
		{"del character", "record\x7fname", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecordID(tt.recordID)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecordID(%q) error = %v, wantErr %v", tt.recordID, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBackendName(t *testing.T) {
	tests := []struct {
		name        string
		backendName string
		wantErr     bool
	}{
		// Valid backend names
		{"valid lowercase", "memory", false},
		{"valid with dash", "my-backend", false},
		{"valid with numbers", "backend123", false},
		{"valid mixed", "file-store", false},
		{"valid single char", "a", false},

		// Invalid backend names
		{"empty string", "", true},
		{"null byte", "backend\x00", true},
		{"uppercase", "MEMORY", true},
		{"mixed case", "Memory", true},
		{"underscore", "my_backend", true},
		{"dot", "my.backend", true},
		{"space", "my backend", true},
		{"path traversal", "../backend", true},
		{"absolute path", "/backend", true},
		{"special char semicolon", "backend;", true},
		{"special char quote", "backend'", true},
		{"control character", "backend\n", true},
		{"too long", strings.Repeat("a", 65), true},
		{"del character", "backend\x7f", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBackendName(tt.backendName)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBackendName(%q) error = %v, wantErr %v", tt.backendName, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean string", "hello world", "hello world"},
		{"with newline", "hello\nworld", "helloworld"},
		{"with tab", "hello\tworld", "helloworld"},
		{"with null byte", "hello\x00world", "helloworld"},
		{"with del character", "hello\x7fworld", "helloworld"},
		{"with multiple controls", "hello\n\r\t\x00world", "helloworld"},
		{"very long string", strings.Repeat("a", 1500), strings.Repeat("a", 1000) + "...[truncated]"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeForLog(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeForLog(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func BenchmarkValidateRecordID(b *testing.B) {
	recordID := "patient-0042"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ValidateRecordID(recordID)
	}
}

func BenchmarkValidateBackendName(b *testing.B) {
	backend := "memory"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ValidateBackendName(backend)
	}
}

func BenchmarkSanitizeForLog(b *testing.B) {
	input := "hello world with some text"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SanitizeForLog(input)
	}
}

// Security tests - specifically test attack vectors against the storage ID surface.
func TestSecurityAttackVectors(t *testing.T) {
	attackVectors := []struct {
		name   string
		input  string
		testFn func(string) error
	}{
		// Path traversal attacks
		{"path traversal recordID", "../../../etc/passwd", ValidateRecordID},
		{"path traversal recordID 2", "../../etc/shadow", ValidateRecordID},
		{"path traversal backend", "../backend", ValidateBackendName},

		// Null byte attacks
		{"null byte recordID", "record\x00.txt", ValidateRecordID},
		{"null byte backend", "backend\x00", ValidateBackendName},

		// Command injection attempts
		{"command injection recordID 1", "record;rm -rf /", ValidateRecordID},
		{"command injection recordID 2", "record`whoami`", ValidateRecordID},
		{"command injection recordID 3", "record$(whoami)", ValidateRecordID},
		{"command injection backend", "backend;ls", ValidateBackendName},

		// SQL injection attempts
		{"sql injection backend", "backend' OR '1'='1", ValidateBackendName},
		{"sql injection recordID", "record' OR '1'='1", ValidateRecordID},

		// Log injection attempts
		{"log injection newline", "record\nINFO: fake log", ValidateRecordID},
		{"log injection carriage return", "record\rINFO: fake", ValidateRecordID},

		// Unicode attacks
		{"unicode normalization", "record\u202e", ValidateRecordID}, // Right-to-left override
	}

	for _, tt := range attackVectors {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.testFn(tt.input)
			if err == nil {
				t.Errorf("Attack vector %q was not blocked!", tt.input)
			}
		})
	}
}
