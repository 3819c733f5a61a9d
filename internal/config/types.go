// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package config holds the YAML configuration schema.
package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	Audit    Audit    `mapstructure:"audit"`
	Security Security `mapstructure:"security" mask:"struct"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Audit configuration settings.
type Audit struct {
	// RetentionDays is how many days of audit entries to keep. Must be a
	// positive integer.
	RetentionDays int `mapstructure:"retention_days" validate:"required,gt=0"`
	// StorageDir is the directory holding the encrypted audit files.
	StorageDir string `mapstructure:"storage_dir" validate:"required"`
	// CleanupSchedule is the cron expression for scheduled retention
	// cleanup. Empty disables the scheduler; cleanup then runs only when
	// invoked explicitly.
	CleanupSchedule string `mapstructure:"cleanup_schedule" validate:"omitempty,cron_schedule"`
}

// Security configuration settings.
type Security struct {
	// EncryptionKey is the hex-encoded AES-256 key used when no OS keychain
	// entry exists. 64 hex characters.
	EncryptionKey string `mapstructure:"encryption_key" validate:"omitempty,len=64,hexadecimal" mask:"password"`
}
