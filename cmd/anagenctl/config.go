package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// runRequest is the flat run description assembled from the optional JSON
// config file and command line flags. Flags win over config values.
type runRequest struct {
	RunID       string
	Problem     string
	Population  int
	Generations int
	Pc          float64
	Pm          float64
	Elites      int
	Seed        int64
	Selection   string
}

func loadRunRequestFromConfig(path string) (runRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runRequest{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return runRequest{}, err
	}

	var req runRequest
	if v, ok := asString(raw["run_id"]); ok {
		req.RunID = v
	}
	if v, ok := asString(raw["problem"]); ok {
		req.Problem = v
	}
	if v, ok := asInt(raw["population"]); ok {
		req.Population = v
	}
	if v, ok := asInt(raw["generations"]); ok {
		req.Generations = v
	}
	if v, ok := asFloat64(raw["pc"]); ok {
		req.Pc = v
	}
	if v, ok := asFloat64(raw["pm"]); ok {
		req.Pm = v
	}
	if v, ok := asInt(raw["elites"]); ok {
		req.Elites = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asString(raw["selection"]); ok {
		req.Selection = v
	}
	return req, nil
}

func loadOrDefaultRunRequest(configPath string) (runRequest, error) {
	if configPath == "" {
		return runRequest{}, nil
	}
	req, err := loadRunRequestFromConfig(configPath)
	if err != nil {
		return runRequest{}, fmt.Errorf("load config: %w", err)
	}
	return req, nil
}

func overrideFromFlags(req *runRequest, set map[string]bool, flagValue map[string]any) {
	for name := range set {
		v, ok := flagValue[name]
		if !ok {
			continue
		}
		switch name {
		case "run-id":
			req.RunID = v.(string)
		case "problem":
			req.Problem = v.(string)
		case "pop":
			req.Population = v.(int)
		case "gens":
			req.Generations = v.(int)
		case "pc":
			req.Pc = v.(float64)
		case "pm":
			req.Pm = v.(float64)
		case "elites":
			req.Elites = v.(int)
		case "seed":
			req.Seed = v.(int64)
		case "selection":
			req.Selection = v.(string)
		}
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
