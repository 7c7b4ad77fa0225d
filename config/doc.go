// Package config loads boardfront settings with Viper.
//
// Settings come from a YAML file (config.yaml in /etc/boardfront, $HOME/.boardfront,
// the working directory or next to the executable), an optional .env file, and
// environment variables. Environment variables win; nested keys use underscores:
//
//	UPSTREAM_BASE_URL=https://api.example.com
//	SERVER_PORT=3000
//	AUTH_COOKIE_DOMAIN=example.com
//
// # Configuration Format
//
//	app_name: boardfront
//	run_mode: release
//	server:
//	  host: 0.0.0.0
//	  port: 3000
//	  allow_origins: ["https://board.example.com"]
//	upstream:
//	  base_url: http://localhost:8080
//	  timeout: 10s
//	  logout_timeout: 5s
//	  refresh_dedup: false
//	auth:
//	  cookie:
//	    domain: example.com
//	frontend:
//	  sign_in_url: /login
//	  forbidden_url: /forbidden
//	logger:
//	  level: info
//	  format: json
//	  output: stdout
//	data:
//	  redis:
//	    addr: localhost:6379
//
// # Hot Reload
//
//	config.Watch(func(cfg *config.Config) {
//	    logger.StdLogger().SetLevel(...)
//	})
package config
