package firebaseadmin

import (
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/smallbiznis/console/internal/config"
)

const tokenURI = "https://oauth2.googleapis.com/token"

var ErrMalformedPrivateKey = errors.New("firebase private key is not a PEM block")

// Credentials are the service-account values used to authenticate the admin SDK.
type Credentials struct {
	ProjectID     string
	ClientEmail   string
	PrivateKey    string
	StorageBucket string
}

func CredentialsFromConfig(cfg config.Config) Credentials {
	return Credentials{
		ProjectID:     cfg.Firebase.ProjectID,
		ClientEmail:   cfg.Firebase.ClientEmail,
		PrivateKey:    cfg.Firebase.PrivateKey,
		StorageBucket: cfg.Firebase.StorageBucket,
	}
}

// Complete reports whether all three service-account values are present.
// Incomplete credentials select application default credentials instead.
func (c Credentials) Complete() bool {
	return strings.TrimSpace(c.ProjectID) != "" &&
		strings.TrimSpace(c.ClientEmail) != "" &&
		strings.TrimSpace(c.PrivateKey) != ""
}

// Bucket returns the configured storage bucket or the project default.
func (c Credentials) Bucket() string {
	if bucket := strings.TrimSpace(c.StorageBucket); bucket != "" {
		return bucket
	}
	if projectID := strings.TrimSpace(c.ProjectID); projectID != "" {
		return projectID + ".appspot.com"
	}
	return ""
}

// NormalizePrivateKey turns literal "\n" escapes (as found in env files) into newlines
// and strips surrounding quotes.
func NormalizePrivateKey(raw string) string {
	key := strings.TrimSpace(raw)
	key = strings.Trim(key, `"'`)
	return strings.ReplaceAll(key, `\n`, "\n")
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// ServiceAccountJSON renders the credentials as a service-account key file.
func (c Credentials) ServiceAccountJSON() ([]byte, error) {
	key := NormalizePrivateKey(c.PrivateKey)
	if block, _ := pem.Decode([]byte(key)); block == nil {
		return nil, ErrMalformedPrivateKey
	}

	payload, err := json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   strings.TrimSpace(c.ProjectID),
		ClientEmail: strings.TrimSpace(c.ClientEmail),
		PrivateKey:  key,
		TokenURI:    tokenURI,
	})
	if err != nil {
		return nil, fmt.Errorf("encode service account: %w", err)
	}
	return payload, nil
}
