// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for a Mississippi
// Queen match. It holds the turn cap, passenger pickup capacity, and
// board segment dimensions, loaded from a JSON file with sensible
// defaults when the file is absent.
package config
