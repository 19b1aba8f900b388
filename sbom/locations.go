package sbom

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	urlPattern     = `(http://www\.|https://www\.|http://|https://|ssh://|git://|svn://|sftp://|ftp://)?([\w\-.!~*'()%;:&=+$,]+@)?[a-z0-9]+([\-.][a-z0-9]+){0,100}\.[a-z]{2,5}(:[0-9]{1,5})?(/.*)?`
	gitPattern     = `(git\+git@[a-zA-Z0-9.\-]+:[a-zA-Z0-9/\\.@\-]+)`
	bazaarPattern  = `(bzr\+lp:[a-zA-Z0-9.\-]+)`
	hostPattern    = `[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?)*(:[0-9]{1,5})?`
	downloadRepos  = `(git|hg|svn|bzr)`
	downloadFormat = `^(((` + downloadRepos + `\+)?` + urlPattern + `)|` + gitPattern + `|` + bazaarPattern + `)$`
)

var (
	validURL      = regexp.MustCompile(`(?i)^` + urlPattern + `$`)
	validDownload = regexp.MustCompile(`(?i)` + downloadFormat)
	validHost     = regexp.MustCompile(`^` + hostPattern + `$`)
)

// ValidURL accepts http(s), ftp, sftp, ssh, git and svn URLs with or
// without scheme, plus any other absolute URI that names a host.
func ValidURL(location string) bool {
	if len(location) == 0 || strings.ContainsAny(location, " \t\r\n") {
		return false
	}
	if validURL.MatchString(location) {
		return true
	}
	parsed, err := url.Parse(location)
	return err == nil && parsed.IsAbs() && len(parsed.Host) > 0
}

// ValidDownloadLocation accepts NONE, NOASSERTION, URLs and VCS locators,
// and bare build host names.
func ValidDownloadLocation(location string) bool {
	switch {
	case location == None, location == NoAssertion:
		return true
	case strings.ContainsAny(location, " \t\r\n"):
		return false
	case validDownload.MatchString(location), validHost.MatchString(location):
		return true
	default:
		return ValidURL(location)
	}
}
