package config

import (
	"context"
	"os"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	vault "github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
)

// Secret is a reference to a secret value:
//
//	env:NAME                      environment variable
//	file:/path/to/file            file contents, trimmed
//	vault:secret/data/bank#field  field of a vault secret (VAULT_ADDR, VAULT_TOKEN)
//	gsm:projects/p/secrets/s/versions/latest
//	raw:value or value            the value itself
type Secret string

const (
	EnvPrefix   = "env:"
	FilePrefix  = "file:"
	VaultPrefix = "vault:"
	GsmPrefix   = "gsm:"
	RawPrefix   = "raw:"
)

var prefixes = []string{EnvPrefix, FilePrefix, VaultPrefix, GsmPrefix, RawPrefix}

func HasTypePrefix(value string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

func (s Secret) Load() (string, error) {
	return GetSecret(string(s))
}

func (s Secret) IsSet() bool {
	return s != ""
}

// String never reveals the value.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	if HasTypePrefix(string(s)) && !strings.HasPrefix(string(s), RawPrefix) {
		return string(s)
	}
	return "<redacted>"
}

func GetSecret(uri string) (string, error) {
	switch {
	case strings.HasPrefix(uri, EnvPrefix):
		name := strings.TrimPrefix(uri, EnvPrefix)
		value, ok := os.LookupEnv(name)
		if !ok {
			return "", errors.Errorf("environment variable %s is not set", name)
		}
		return strings.TrimSpace(value), nil
	case strings.HasPrefix(uri, FilePrefix):
		path := strings.TrimPrefix(uri, FilePrefix)
		if strings.HasPrefix(path, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			path = home + path[1:]
		}
		bz, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "reading secret file")
		}
		return strings.TrimSpace(string(bz)), nil
	case strings.HasPrefix(uri, VaultPrefix):
		return loadVaultSecret(strings.TrimPrefix(uri, VaultPrefix))
	case strings.HasPrefix(uri, GsmPrefix):
		return loadGsmSecret(strings.TrimPrefix(uri, GsmPrefix))
	case strings.HasPrefix(uri, RawPrefix):
		return strings.TrimPrefix(uri, RawPrefix), nil
	}
	return uri, nil
}

func loadVaultSecret(ref string) (string, error) {
	path, field, ok := strings.Cut(ref, "#")
	if !ok || path == "" || field == "" {
		return "", errors.Errorf("vault secret must look like vault:path#field, got %q", ref)
	}
	client, err := vault.NewClient(vault.DefaultConfig())
	if err != nil {
		return "", errors.Wrap(err, "creating vault client")
	}
	secret, err := client.Logical().Read(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading vault secret %s", path)
	}
	if secret == nil || secret.Data == nil {
		return "", errors.Errorf("vault secret %s not found", path)
	}
	data := secret.Data
	// kv v2 nests the values
	if nested, ok := data["data"].(map[string]interface{}); ok {
		data = nested
	}
	value, ok := data[field].(string)
	if !ok {
		return "", errors.Errorf("vault secret %s has no field %s", path, field)
	}
	return strings.TrimSpace(value), nil
}

func loadGsmSecret(name string) (string, error) {
	if !strings.HasPrefix(name, "projects/") || !strings.Contains(name, "/secrets/") {
		return "", errors.Errorf("gsm secret must look like gsm:projects/p/secrets/s/versions/v, got %q", name)
	}
	if !strings.Contains(name, "/versions/") {
		name += "/versions/latest"
	}
	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", errors.Wrap(err, "creating secret manager client")
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.Wrapf(err, "accessing %s", name)
	}
	return strings.TrimSpace(string(resp.GetPayload().GetData())), nil
}
