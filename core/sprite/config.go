package sprite

// Config holds configuration for the sprite store.
type Config struct {
	// Driver selects the storage backend (local or s3).
	Driver string `mapstructure:"driver" default:"local"`
	// Root is the image root directory for the local driver.
	Root string `mapstructure:"root" default:"./sprites"`

	// Endpoint is the URL of the object storage service (s3 driver).
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to store sprites in.
	Bucket string `mapstructure:"bucket" default:"sprites"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
