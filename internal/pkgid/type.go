package pkgid

import "fmt"

// PackageType declares which region of the target store a package writes to.
type PackageType string

const (
	// Application packages only write below the application roots.
	Application PackageType = "application"

	// Content packages only write outside the application roots.
	Content PackageType = "content"

	// Container packages embed other packages and write no content of
	// their own.
	Container PackageType = "container"

	// Mixed packages may write anywhere. This is the default.
	Mixed PackageType = "mixed"
)

// ParsePackageType parses a package type string.
func ParsePackageType(s string) (PackageType, error) {
	switch PackageType(s) {
	case Application, Content, Container, Mixed:
		return PackageType(s), nil
	case "":
		return Mixed, nil
	default:
		return "", fmt.Errorf("unknown package type: %q", s)
	}
}
