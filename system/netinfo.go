// Package system provides the controller's network identity and restart
// primitive.
package system

import (
	"net"
	"net/netip"
)

// NetInfo reports the address and hardware identifier of the first
// interface that is up, not a loopback and carries an IPv4 address.
type NetInfo struct {
	// ID overrides the hardware identifier when set.
	ID string

	// interfaces lists candidate interfaces. Defaults to net.Interfaces.
	interfaces func() ([]net.Interface, error)
	// addrs lists the addresses of an interface. Defaults to
	// (*net.Interface).Addrs.
	addrs func(net.Interface) ([]net.Addr, error)
}

// NewNetInfo returns a NetInfo reading the host's interfaces. A non-empty
// id overrides the reported hardware identifier.
func NewNetInfo(id string) *NetInfo {
	return &NetInfo{
		ID:         id,
		interfaces: net.Interfaces,
		addrs: func(iface net.Interface) ([]net.Addr, error) {
			return iface.Addrs()
		},
	}
}

// LocalIP returns the primary IPv4 address, or the zero Addr when the
// controller has none.
func (n *NetInfo) LocalIP() netip.Addr {
	_, addr := n.primary()
	return addr
}

// HardwareID returns the MAC address of the primary interface formatted as
// aa:bb:cc:dd:ee:ff, or an empty string when there is none.
func (n *NetInfo) HardwareID() string {
	if n.ID != "" {
		return n.ID
	}
	iface, _ := n.primary()
	if iface == nil {
		return ""
	}
	return iface.HardwareAddr.String()
}

func (n *NetInfo) primary() (*net.Interface, netip.Addr) {
	list, err := n.interfaces()
	if err != nil {
		return nil, netip.Addr{}
	}

	for i := range list {
		iface := list[i]
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := n.addrs(iface)
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipnet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			addr, ok := netip.AddrFromSlice(ipnet.IP)
			if !ok {
				continue
			}
			addr = addr.Unmap()
			if addr.Is4() && !addr.IsLoopback() {
				return &iface, addr
			}
		}
	}
	return nil, netip.Addr{}
}
