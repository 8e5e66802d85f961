package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/forkedapp/forked/internal/flagx"
	"github.com/forkedapp/forked/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	BackendBaseURL *string         `json:"backend_base_url"`
	YelpBaseURL    *string         `json:"yelp_base_url"`
	YelpAPIKey     *string         `json:"yelp_api_key"`
	DataDir        *string         `json:"data_dir"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file picked via
// the -c/-config flags. Absent file path means no JSON layer. Only fields
// present in the file are copied.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != nil {
		cfg.BackendBaseURL = *jc.BackendBaseURL
	}
	if jc.YelpBaseURL != nil {
		cfg.YelpBaseURL = *jc.YelpBaseURL
	}
	if jc.YelpAPIKey != nil {
		cfg.YelpAPIKey = *jc.YelpAPIKey
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
