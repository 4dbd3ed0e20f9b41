package params

import "github.com/lihongjie0209/cryptocore/cipher"

// ParametersWithIV wraps cipher parameters and an initialization vector.
type ParametersWithIV struct {
	iv         []byte
	parameters cipher.Parameters
}

// NewParametersWithIV creates parameters with an IV, taking a defensive copy of iv.
func NewParametersWithIV(parameters cipher.Parameters, iv []byte) *ParametersWithIV {
	ivCopy := make([]byte, len(iv))
	copy(ivCopy, iv)

	return &ParametersWithIV{
		iv:         ivCopy,
		parameters: parameters,
	}
}

// IV returns the initialization vector.
func (p *ParametersWithIV) IV() []byte {
	return p.iv
}

// Parameters returns the underlying cipher parameters.
func (p *ParametersWithIV) Parameters() cipher.Parameters {
	return p.parameters
}

// IsCipherParameters implements the cipher.Parameters marker interface.
func (p *ParametersWithIV) IsCipherParameters() bool {
	return true
}

var _ cipher.Parameters = (*ParametersWithIV)(nil)
