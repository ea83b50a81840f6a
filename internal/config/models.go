package config

// FileConfig represents the top-level structure of an ec2inventory HCL file.
type FileConfig struct {
	Region      string            `hcl:"region,optional"`
	OutputDir   string            `hcl:"output_dir,optional"`
	Timeout     string            `hcl:"timeout,optional"`
	Retries     *int              `hcl:"retries,optional"`
	LogLevel    string            `hcl:"log_level,optional"`
	Credentials *CredentialsBlock `hcl:"credentials,block"`
}

// CredentialsBlock selects the credential source, e.g.
//
//	credentials "secretsmanager" {
//	  secret_id = "inventory/ec2"
//	}
//
// Key pairs are never read from the file: access_key and secret_key are
// declared only so they can be rejected.
type CredentialsBlock struct {
	Source    string  `hcl:"source,label"`
	SecretID  string  `hcl:"secret_id,optional"`
	AccessKey *string `hcl:"access_key,optional"`
	SecretKey *string `hcl:"secret_key,optional"`
}
