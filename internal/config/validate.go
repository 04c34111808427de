package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateImpact(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLayout() error {
	l := c.Layout
	if l.PageWidth <= 0 || l.PageHeight <= 0 {
		return errors.New("layout.page_width and layout.page_height must be positive")
	}
	if l.Margin < 0 {
		return errors.New("layout.margin must not be negative")
	}
	if 2*l.Margin >= l.PageWidth || 2*l.Margin >= l.PageHeight {
		return errors.New("layout.margin leaves no printable area")
	}
	if l.LineHeightRatio <= 0 {
		return errors.New("layout.line_height_ratio must be positive")
	}
	if l.SignatureOffset < 0 || l.SignatureOffset > l.PageHeight {
		return fmt.Errorf("layout.signature_offset must be between 0 and %.0f", l.PageHeight)
	}
	if l.AttendanceRows < 0 {
		return errors.New("layout.attendance_rows must not be negative")
	}
	if l.WrapCacheSize < 0 {
		return errors.New("layout.wrap_cache_size must not be negative")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Driver {
	case "sqlite":
	case "postgres":
		if c.Catalog.DSN == "" {
			return errors.New("catalog.dsn is required when catalog.driver is postgres (or set RENDEZVOUS_CATALOG_DSN)")
		}
	default:
		return fmt.Errorf("catalog.driver: unsupported value %q (expected sqlite or postgres)", c.Catalog.Driver)
	}
	return nil
}

func (c *Config) validateImpact() error {
	if c.Impact.DelayMonths <= 0 {
		return errors.New("impact.delay_months must be positive")
	}
	parsed, err := url.Parse(c.Impact.ReportBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("impact.report_base_url must be an absolute URL, got %q", c.Impact.ReportBaseURL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
