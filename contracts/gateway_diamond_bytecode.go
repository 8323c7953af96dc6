// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

package contracts

import "github.com/ethereum/go-ethereum/common"

// GatewayDiamondDeployedBin is the runtime bytecode installed at the diamond
// address after the constructor returns.
const GatewayDiamondDeployedBin = "0x60806040523615608757600080356001600160e01b0319168082527f806e0cbb9fce296bbc336a48f42bf1dbc69722d18d90d6fe705b7582c2bb4bd260205260408220546001600160a01b0316908115606f5750818091368280378136915af43d82803e15606b573d90f35b3d90fd5b60249060405190630a82dd7360e31b82526004820152fd5b600080356001600160e01b0319168082527f806e0cbb9fce296bbc336a48f42bf1dbc69722d18d90d6fe705b7582c2bb4bd260205260408220546001600160a01b031690811560e95750818091368280378136915af43d82803e15606b573d90f35b630a82dd7360e31b60805260845260246080fdfea2646970667358221220773997f12e68f71cdfa42d5969e0e3442691915d002a0889891e94867f0052d064736f6c63430008130033"

// GatewayDiamondBytecode returns a fresh copy of the creation bytecode.
func GatewayDiamondBytecode() []byte {
	return common.FromHex(GatewayDiamondMetaData.Bin)
}

// GatewayDiamondDeployedBytecode returns a fresh copy of the runtime bytecode.
func GatewayDiamondDeployedBytecode() []byte {
	return common.FromHex(GatewayDiamondDeployedBin)
}
