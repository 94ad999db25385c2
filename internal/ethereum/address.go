package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// zeroAddress 全零地址
var zeroAddress = common.Address{}

// IsValidAddress 校验EVM地址（0x + 40位十六进制且非全零，Celo地址同为EVM地址）
func IsValidAddress(s string) bool {
	s = strings.TrimSpace(s)
	// common.IsHexAddress 不强制0x前缀，这里强制
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}
	if !common.IsHexAddress(s) {
		return false
	}
	return common.HexToAddress(s) != zeroAddress
}
