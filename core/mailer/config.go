package mailer

// Config holds configuration for outbound mail.
type Config struct {
	// Host is the SMTP host. Empty disables outbound mail.
	Host string `mapstructure:"host" default:""`
	// Port is the SMTP port.
	Port int `mapstructure:"port" default:"587"`
	// User is the SMTP username.
	User string `mapstructure:"user" default:""`
	// Password is the SMTP password.
	Password string `mapstructure:"password" default:""`
	// From is the sender address on outgoing notifications.
	From string `mapstructure:"from" default:"noreply@localhost"`
	// Retries is how many delivery attempts the dispatcher makes.
	Retries int `mapstructure:"retries" default:"3"`
	// BackoffSeconds is the delay between delivery attempts.
	BackoffSeconds int `mapstructure:"backoff_seconds" default:"5"`
}
