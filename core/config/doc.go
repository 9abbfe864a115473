// Package config loads application settings from the environment.
//
// A .env file in the given directory is loaded first, then Viper maps
// SECTION_FIELD environment variables onto the nested keys. Defaults come
// from the default struct tags of each section.
//
// # Sections
//
//   - server: HTTP port and allowed upstream domains
//   - log: level and format
//   - upstream: scheme, timeouts, optional proxy URL and identity headers
//   - compare: concurrency, retries, page sizes, caps and totals cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Compare.Concurrency)
package config
