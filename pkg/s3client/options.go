package s3client

type Option func(c *S3Client)

func Region(region string) Option {
	return func(c *S3Client) {
		if region != "" {
			c.region = region
		}
	}
}

// Endpoint points the client at an S3-compatible service instead of AWS.
func Endpoint(endpoint string) Option {
	return func(c *S3Client) {
		c.endpoint = endpoint
	}
}

func UsePathStyle(use bool) Option {
	return func(c *S3Client) {
		c.usePathStyle = use
	}
}
