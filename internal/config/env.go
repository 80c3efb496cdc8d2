package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandEnvVars расширяет переменные окружения в конфигурации
func expandEnvVars(c *Config) {
	c.Crab.OutLFNDirBase = expandEnv(c.Crab.OutLFNDirBase)
	c.Crab.StorageSite = expandEnv(c.Crab.StorageSite)
	c.Logging.Output = expandHome(expandEnv(c.Logging.Output))
	c.Templates.Dir = expandHome(expandEnv(c.Templates.Dir))
	for i := range c.LumiMasks {
		c.LumiMasks[i].URL = expandEnv(c.LumiMasks[i].URL)
	}
}

// expandEnv заменяет все вхождения ${VAR} и ${VAR:default}.
// Незакрытая ссылка оставляется как есть.
func expandEnv(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}

	var sb strings.Builder
	rest := s
	for {
		start := strings.Index(rest, "${")
		if start == -1 {
			sb.WriteString(rest)
			break
		}
		end := strings.Index(rest[start:], "}")
		if end == -1 {
			sb.WriteString(rest)
			break
		}
		end += start

		sb.WriteString(rest[:start])
		sb.WriteString(lookupEnv(rest[start+2 : end]))
		rest = rest[end+1:]
	}
	return sb.String()
}

func lookupEnv(content string) string {
	key, defaultVal, hasDefault := strings.Cut(content, ":")
	if val := os.Getenv(key); val != "" {
		return val
	}
	if hasDefault {
		return defaultVal
	}
	return ""
}

// expandHome расширяет ~ в пути
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
