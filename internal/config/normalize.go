package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganization()
	c.normalizeLayout()
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeImpact()
	c.normalizeNotifications()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DocumentsDir) == "" {
		c.Paths.DocumentsDir = filepath.Join(c.Paths.DataDir, "documents")
	}
	if c.Paths.DocumentsDir, err = expandPath(c.Paths.DocumentsDir); err != nil {
		return fmt.Errorf("paths.documents_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.DataDir, "logs")
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganization() {
	c.Organization.Name = strings.TrimSpace(c.Organization.Name)
	c.Organization.Address = strings.TrimSpace(c.Organization.Address)
	c.Organization.City = strings.TrimSpace(c.Organization.City)
	c.Organization.Siret = strings.ReplaceAll(strings.TrimSpace(c.Organization.Siret), " ", "")
	c.Organization.DeclarationNumber = strings.TrimSpace(c.Organization.DeclarationNumber)
	c.Organization.Representative = strings.TrimSpace(c.Organization.Representative)
	c.Organization.Email = strings.TrimSpace(c.Organization.Email)
}

func (c *Config) normalizeLayout() {
	if c.Layout.PageWidth == 0 {
		c.Layout.PageWidth = defaultPageWidth
	}
	if c.Layout.PageHeight == 0 {
		c.Layout.PageHeight = defaultPageHeight
	}
	if c.Layout.LineHeightRatio == 0 {
		c.Layout.LineHeightRatio = defaultLineHeightRatio
	}
	if c.Layout.AttendanceRows == 0 {
		c.Layout.AttendanceRows = defaultAttendanceRows
	}
	if c.Layout.WrapCacheSize == 0 {
		c.Layout.WrapCacheSize = defaultWrapCacheSize
	}
}

func (c *Config) normalizeCatalog() error {
	c.Catalog.Driver = strings.ToLower(strings.TrimSpace(c.Catalog.Driver))
	if c.Catalog.Driver == "" {
		c.Catalog.Driver = defaultCatalogDriver
	}
	c.Catalog.DSN = strings.TrimSpace(c.Catalog.DSN)
	if c.Catalog.DSN == "" {
		if value, ok := os.LookupEnv("RENDEZVOUS_CATALOG_DSN"); ok {
			c.Catalog.DSN = strings.TrimSpace(value)
		}
	}
	if c.Catalog.DSN == "" && c.Catalog.Driver == "sqlite" {
		c.Catalog.DSN = filepath.Join(c.Paths.DataDir, "catalog.db")
	}
	return nil
}

func (c *Config) normalizeImpact() {
	c.Impact.ReportBaseURL = strings.TrimRight(strings.TrimSpace(c.Impact.ReportBaseURL), "/")
	if c.Impact.ReportBaseURL == "" {
		c.Impact.ReportBaseURL = defaultReportBaseURL
	}
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.NtfyTopic == "" {
		if value, ok := os.LookupEnv("RENDEZVOUS_NTFY_TOPIC"); ok {
			c.Notifications.NtfyTopic = strings.TrimSpace(value)
		}
	}
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
