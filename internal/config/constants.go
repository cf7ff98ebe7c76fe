package config

// Base application details
const AppName = "slices"
const AppVersion = "0.1.0"
const DefaultConfigFileName = "config.toml"

// Demo defaults
const DefaultText = "Hello, World!"
const DefaultGraphemes = false
const DefaultCopyFirstWord = false
