package xspi

import (
	"errors"
	"fmt"

	xspireg "github.com/clktmr/artinchip/d13x/xspi"
	"github.com/clktmr/artinchip/debug"
)

var ErrDLLConfig = errors.New("illegal DLL configuration")

// DLLConfig is the configuration of a chip select's DLL.
type DLLConfig struct {
	Phase  xspireg.PhaseSel
	ICP    xspireg.ICP
	Delay  uint8 // 0..3
	Bypass xspireg.DLLBypass
}

// Apply returns r with c applied. The enable bits are derived from the
// phase: PhaseBypass runs the clock through the VCDL only, every other phase
// needs DLL, VCDL and charge pump. Other bits of r are kept.
func (c DLLConfig) Apply(r xspireg.CsDLLControl) xspireg.CsDLLControl {
	r = r.SetPhaseSel(c.Phase).SetICP(c.ICP).SetDelay(c.Delay).SetBypass(c.Bypass)
	if c.Phase == xspireg.PhaseBypass {
		r = r.DisableDLL().DisableCP().EnableVCDL().EnableBypass()
	} else {
		r = r.EnableDLL().EnableCP().EnableVCDL().DisableBypass()
	}
	if debug.Enabled {
		debug.AssertErrNil(CheckDLL(r))
	}
	return r
}

// CheckDLL returns an error wrapping ErrDLLConfig if the enable bits of r
// don't match its phase selection. A DLL with all enable bits cleared is
// legal and passes the clock with 0 phase.
func CheckDLL(r xspireg.CsDLLControl) error {
	dll, vcdl, cp, bypass := r.DLLEnabled(), r.VCDLEnabled(), r.CPEnabled(), r.BypassEnabled()
	if !dll && !vcdl && !cp && !bypass {
		return nil
	}
	phase := r.PhaseSel()
	if phase == xspireg.PhaseBypass {
		if dll || !vcdl || cp || !bypass {
			return fmt.Errorf("%w: %v needs only EN_VCDL and EN_BYPASS (%#08x)", ErrDLLConfig, phase, uint32(r))
		}
		return nil
	}
	if !dll || !vcdl || !cp || bypass {
		return fmt.Errorf("%w: %v needs EN_DLL, EN_VCDL and EN_CP without EN_BYPASS (%#08x)", ErrDLLConfig, phase, uint32(r))
	}
	return nil
}
