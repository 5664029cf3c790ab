package render

import (
	"html/template"
	"os"
	"path/filepath"

	logx "github.com/Cheertaboi/coupon-feed-service/pkg/logger"
)

// Icons holds the inline SVG copy icons. A zero Icons renders the textual
// copy button everywhere.
type Icons struct {
	Desktop template.HTML
	Mobile  template.HTML
}

// For picks the icon variant; empty means the asset was not found.
func (i Icons) For(mobile bool) template.HTML {
	if mobile {
		return i.Mobile
	}
	return i.Desktop
}

// LoadIcons reads the desktop and mobile SVG assets from dir. A missing or
// unreadable file leaves that variant empty so the text fallback is used.
func LoadIcons(dir, desktopFile, mobileFile string) Icons {
	return Icons{
		Desktop: readIcon(dir, desktopFile),
		Mobile:  readIcon(dir, mobileFile),
	}
}

func readIcon(dir, name string) template.HTML {
	if dir == "" || name == "" {
		return ""
	}
	path := filepath.Join(dir, filepath.Base(name))
	b, err := os.ReadFile(path)
	if err != nil {
		logx.Warn().Err(err).Str("path", path).Msg("copy icon not found, using text button")
		return ""
	}
	// Icons are operator-provided assets, not feed data.
	return template.HTML(b)
}
