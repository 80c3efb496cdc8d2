package config

import (
	"fmt"
	"sort"
	"strings"
)

// Splitting algorithms accepted by CRAB for Data.splitting
var validSplitting = map[string]bool{
	"Automatic":           true,
	"FileBased":           true,
	"LumiBased":           true,
	"EventAwareLumiBased": true,
	"EventBased":          true,
}

func splittingNames() string {
	names := make([]string, 0, len(validSplitting))
	for name := range validSplitting {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func validateLFN(lfn string) error {
	if lfn == "" {
		return fmt.Errorf("crab.out_lfn_dir_base is required")
	}
	if !strings.HasPrefix(lfn, "/store/") {
		return fmt.Errorf("crab.out_lfn_dir_base must start with /store/ (got %s)", lfn)
	}
	if strings.Contains(lfn, "..") {
		return fmt.Errorf("crab.out_lfn_dir_base contains path traversal sequence")
	}
	return nil
}

// Имена сайтов имеют вид T<tier>_<country>_<name>, например T3_KR_KNU
func validateSite(site string) error {
	if site == "" {
		return fmt.Errorf("crab.storage_site is required")
	}

	parts := strings.SplitN(site, "_", 3)
	if len(parts) != 3 || len(parts[0]) != 2 || parts[0][0] != 'T' {
		return fmt.Errorf("crab.storage_site has invalid format (expected T<tier>_<CC>_<name>, got: %s)", site)
	}
	if tier := parts[0][1]; tier < '0' || tier > '3' {
		return fmt.Errorf("crab.storage_site has invalid tier %q", tier)
	}
	if parts[2] == "" {
		return fmt.Errorf("crab.storage_site has empty site name")
	}

	return nil
}
