// Package config loads StockQuest session configuration from YAML.
//
// Values of the form ${VAR} are expanded from the environment before
// parsing, so secrets such as the Gemini API key can stay out of the file:
//
//	events:
//	  enabled: true
//	  api_key: ${GEMINI_API_KEY}
package config
