package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	InboxSize         int    `usage:"number of operations the store queues before callers block"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	HttpsEnabled      bool   `usage:"serve HTTPS instead of HTTP"`
	HttpsSelfsigned   bool   `usage:"serve HTTPS with a certificate generated at startup (implied by HttpsEnabled)"`
}

func Default() *Configuration {
	return &Configuration{
		HttpAddr:          "127.0.0.1:8080",
		InboxSize:         1024,
		ShowBanner:        true,
		ShowConfig:        false,
		EnableCompression: true,
	}
}
