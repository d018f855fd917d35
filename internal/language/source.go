package language

import "strings"

// sourcePath reduces a VCS dependency source to host/owner/repo form, e.g.
// "git+ssh://git@bitbucket.org:bxbdigital/lib.git#v1" becomes
// "bitbucket.org/bxbdigital/lib".
func sourcePath(ref string) string {
	s := strings.TrimSpace(ref)
	s = strings.TrimPrefix(s, "git+")

	if rest, ok := strings.CutPrefix(s, "bitbucket:"); ok {
		s = "bitbucket.org/" + rest
	}

	_, rest, hasScheme := strings.Cut(s, "://")
	if hasScheme {
		s = rest
	}

	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}

	// Drop userinfo such as "git@".
	if at := strings.IndexByte(s, '@'); at >= 0 {
		if sep := strings.IndexAny(s, "/:"); sep < 0 || at < sep {
			s = s[at+1:]
		}
	}

	// "host:port/owner/repo" in a URL, or scp-style "host:owner/repo".
	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		if slash := strings.IndexByte(s, '/'); slash < 0 || colon < slash {
			if hasScheme && slash > colon+1 && isDigits(s[colon+1:slash]) {
				s = s[:colon] + s[slash:]
			} else {
				s = s[:colon] + "/" + s[colon+1:]
			}
		}
	}

	// A trailing "@ref" pin on the last path segment.
	if slash := strings.LastIndexByte(s, '/'); slash >= 0 {
		if at := strings.IndexByte(s[slash:], '@'); at >= 0 {
			s = s[:slash+at]
		}
	}

	s = strings.TrimSuffix(s, "/")

	return strings.TrimSuffix(s, ".git")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
