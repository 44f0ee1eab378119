// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package conf

import "os"

// Retrieve the value of the environment variable named by the key.
// If the variable is empty, it returns the provided default value.
func getenv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
