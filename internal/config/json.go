// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-vault-import/models"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		PasswordSalt   string   `json:"password_salt"`
		MasterPassword string   `json:"master_password"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Import struct {
		Delimiter string `json:"delimiter"`
		BaseDir   string `json:"base_dir"`
	} `json:"import,omitempty"`

	LDAP struct {
		URL                string                           `json:"url"`
		BindDN             string                           `json:"bind_dn"`
		BindPassword       string                           `json:"bind_password"`
		BaseDN             string                           `json:"base_dn"`
		StartTLS           bool                             `json:"start_tls"`
		InsecureSkipVerify bool                             `json:"insecure_skip_verify"`
		PageSize           uint32                           `json:"page_size"`
		GroupFilter        string                           `json:"group_filter"`
		UserFilter         string                           `json:"user_filter"`
		Mapping            models.DirectoryAttributeMapping `json:"mapping"`
		DefaultGroupID     int64                            `json:"default_group_id"`
		DefaultProfileID   int64                            `json:"default_profile_id"`
	} `json:"ldap,omitempty"`

	S3 struct {
		Region    string `json:"region"`
		Endpoint  string `json:"endpoint"`
		Bucket    string `json:"bucket"`
		AccessKey string `json:"access_key"`
		SecretKey string `json:"secret_key"`
	} `json:"s3,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordSalt:   jsonCfg.App.PasswordSalt,
			MasterPassword: jsonCfg.App.MasterPassword,
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Import: Import{
			Delimiter: jsonCfg.Import.Delimiter,
			BaseDir:   jsonCfg.Import.BaseDir,
		},
		LDAP: LDAP{
			URL:                jsonCfg.LDAP.URL,
			BindDN:             jsonCfg.LDAP.BindDN,
			BindPassword:       jsonCfg.LDAP.BindPassword,
			BaseDN:             jsonCfg.LDAP.BaseDN,
			StartTLS:           jsonCfg.LDAP.StartTLS,
			InsecureSkipVerify: jsonCfg.LDAP.InsecureSkipVerify,
			PageSize:           jsonCfg.LDAP.PageSize,
			GroupFilter:        jsonCfg.LDAP.GroupFilter,
			UserFilter:         jsonCfg.LDAP.UserFilter,
			Mapping:            jsonCfg.LDAP.Mapping,
			DefaultGroupID:     jsonCfg.LDAP.DefaultGroupID,
			DefaultProfileID:   jsonCfg.LDAP.DefaultProfileID,
		},
		S3: S3{
			Region:    jsonCfg.S3.Region,
			Endpoint:  jsonCfg.S3.Endpoint,
			Bucket:    jsonCfg.S3.Bucket,
			AccessKey: jsonCfg.S3.AccessKey,
			SecretKey: jsonCfg.S3.SecretKey,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
