package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/yukikurage/employee-management-api/internal/config"
	"github.com/yukikurage/employee-management-api/internal/constants"
)

// SecretGetter is the part of the Secrets Manager client used to fetch the
// signing key.
type SecretGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// NewSecretsManagerClient builds a client from the default AWS credential
// chain, honouring cfg.AWSRegion when set.
func NewSecretsManagerClient(ctx context.Context, cfg *config.Config) (*secretsmanager.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return secretsmanager.NewFromConfig(awsCfg), nil
}

// LoadSigningKey resolves the HMAC key: the Secrets Manager secret named by
// JWTSecretID, then JWTSecret, then a random key that lives as long as the
// process.
func LoadSigningKey(ctx context.Context, cfg *config.Config, client SecretGetter) ([]byte, error) {
	if cfg.JWTSecretID != "" {
		if client == nil {
			return nil, errors.New("JWT_SECRET_ID is set but no Secrets Manager client is available")
		}
		return fetchSecret(ctx, client, cfg.JWTSecretID)
	}

	if cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret), nil
	}

	log.Println("WARNING: no JWT secret configured, using a random key; tokens will not survive a restart")
	key := make([]byte, constants.SigningKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return key, nil
}

func fetchSecret(ctx context.Context, client SecretGetter, secretID string) ([]byte, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read secret %s: %w", secretID, err)
	}

	switch {
	case out.SecretString != nil && *out.SecretString != "":
		return []byte(*out.SecretString), nil
	case len(out.SecretBinary) > 0:
		return out.SecretBinary, nil
	default:
		return nil, fmt.Errorf("secret %s is empty", secretID)
	}
}
