package provider

import (
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"

	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/errors"
)

// ErrBlockedAddress is returned by the source client when a dial targets an
// address that is not publicly routable.
var ErrBlockedAddress = errors.New("source address is not allowed")

const sourceDialTimeout = 10 * time.Second

// NewSourceClient is the client used to pull caller-supplied media. It only
// follows https URLs and refuses to connect to loopback, private,
// link-local or unspecified addresses.
func NewSourceClient() *http.Client {
	dialer := &net.Dialer{
		Timeout: sourceDialTimeout,
		Control: denyInternalAddress,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			if req.URL.Scheme != "https" {
				return errors.WithStack(ErrBlockedAddress)
			}

			return nil
		},
	}
}

// ParseSourceURL accepts absolute https URLs with a host.
func ParseSourceURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return nil, domainerrors.ErrValidation.WithMessage("video_url is not a valid URL")
	}
	if parsed.Scheme != "https" {
		return nil, domainerrors.ErrValidation.WithMessage("video_url must use https")
	}

	return parsed, nil
}

func denyInternalAddress(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return errors.Wrap(ErrBlockedAddress, address)
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return errors.Wrap(ErrBlockedAddress, address)
	}
	if !IsPublicAddr(addr) {
		return errors.Wrap(ErrBlockedAddress, address)
	}

	return nil
}

// IsPublicAddr reports whether addr may be dialed for a source fetch.
func IsPublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()

	return addr.IsValid() &&
		!addr.IsLoopback() &&
		!addr.IsPrivate() &&
		!addr.IsLinkLocalUnicast() &&
		!addr.IsLinkLocalMulticast() &&
		!addr.IsInterfaceLocalMulticast() &&
		!addr.IsMulticast() &&
		!addr.IsUnspecified()
}
