package config

// Config represents the configs model.
type Config struct {
	// Application is the model of application configs.
	Application struct {
		// Name of the application.
		Name string `yaml:"name"`
		// BaseURL of the application.
		// It can be http://localhost:8080 during development and https://domain.com in production.
		BaseURL string `yaml:"base_url"`
		// PProf is a flag to enable/disable profiling.
		PProf bool `yaml:"pprof"`
	} `yaml:"application"`

	// Database is the model of the Postgres configs.
	Database struct {
		Addr     string `yaml:"addr"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
	} `yaml:"database"`

	// HTTPServer is the model of the HTTP Server configs.
	HTTPServer struct {
		// Addr is the address of the HTTP server.
		Addr string `yaml:"addr"`
	} `yaml:"http_server"`

	// Logger is the model of the application logger configs.
	Logger struct {
		// Level of the logger.
		Level string `yaml:"level"`
		// Pretty is a flag that dictates whether the log output should be pretty (human-readable).
		Pretty bool `yaml:"pretty"`
	} `yaml:"logger"`

	// OAuthOsu holds the osu! oauth configs.
	OAuthOsu struct {
		// ClientID is the OAuth client ID.
		ClientID string `yaml:"client_id"`
		// ClientSecret is the OAuth client secret.
		ClientSecret string `yaml:"client_secret"`
		// AuthURL is the URL of osu!'s authentication page.
		AuthURL string `yaml:"auth_url"`
		// TokenEndpoint is osu!'s endpoint to exchange the authorization code with tokens.
		TokenEndpoint string `yaml:"token_endpoint"`
		// APIBaseURL is the base URL of osu!'s API, example: https://osu.ppy.sh/api/v2
		APIBaseURL string `yaml:"api_base_url"`
		// Scopes are the OAuth scopes.
		Scopes string `yaml:"scopes"`
		// RedirectURI is the URI osu! redirects to after user consent. Also sent
		// during the token exchange, where the provider verifies it.
		RedirectURI string `yaml:"redirect_uri"`
		// PostLoginRedirectURI is where the browser is finally sent after a successful login.
		PostLoginRedirectURI string `yaml:"post_login_redirect_uri"`
		// TimeoutSeconds bounds every outbound call to the provider.
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"oauth_osu"`
}

// Load loads and returns the config value.
func Load() Config {
	return loadWithViper()
}

// LoadMock provides a mock instance of the config for testing purposes.
func LoadMock() Config {
	cfg := Config{}

	cfg.Application.Name = "example-application"
	cfg.Application.BaseURL = "http://localhost:8080"
	cfg.HTTPServer.Addr = "localhost:8080"

	cfg.Logger.Level = "debug"
	cfg.Logger.Pretty = true

	cfg.OAuthOsu.ClientID = "15638"
	cfg.OAuthOsu.ClientSecret = "mock-client-secret"
	cfg.OAuthOsu.AuthURL = "https://osu.ppy.sh/oauth/authorize"
	cfg.OAuthOsu.TokenEndpoint = "https://osu.ppy.sh/oauth/token"
	cfg.OAuthOsu.APIBaseURL = "https://osu.ppy.sh/api/v2"
	cfg.OAuthOsu.Scopes = "identify friends.read"
	cfg.OAuthOsu.RedirectURI = "http://localhost:8080/api/auth/osu/callback"
	cfg.OAuthOsu.PostLoginRedirectURI = "http://localhost:3000/login"
	cfg.OAuthOsu.TimeoutSeconds = 10

	return cfg
}
