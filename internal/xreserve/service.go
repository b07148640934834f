// Package xreserve implements the deposit path that locks USDC on Ethereum to
// mint USDCx on Canton. It is a two-step synchronous protocol: approve the
// xReserve contract, then call depositToRemote, each confirmed by transaction
// receipt before moving on. No lifecycle events are involved.
//
// Attestation completion is not observed in-app. After the deposit confirms,
// the transfer parks in a confirming state and the user claims USDCx through
// Circle's claim UI or docs once attestation lands.
package xreserve

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/crosslane/bridgewatch/internal/chainadapter"
	"github.com/crosslane/bridgewatch/internal/networks"
	"github.com/crosslane/bridgewatch/internal/pkg/logger"
	"github.com/crosslane/bridgewatch/internal/pkg/types"
	"github.com/crosslane/bridgewatch/internal/pkg/validator"
)

var (
	// ErrUnsupportedSourceChain is returned when the source chain carries no
	// xReserve contract.
	ErrUnsupportedSourceChain = errors.New("xreserve deposits are not supported from this chain")

	// ErrEVMWalletRequired is returned when the wallet is not EVM-capable.
	ErrEVMWalletRequired = errors.New("an EVM wallet is required for xreserve deposits")
)

// ReceiptWaiter blocks until a submitted transaction is mined and succeeded.
type ReceiptWaiter interface {
	WaitForTransactionSuccess(ctx context.Context, txHash string) error
}

// DepositParams describes one deposit. Amount is the human-readable USDC
// decimal string; scaling to base units happens here.
type DepositParams struct {
	SourceChain     networks.ChainID `validate:"required"`
	Amount          types.Amount     `validate:"required"`
	CantonRecipient string           `validate:"required"`
}

// DepositCallbacks fire at fixed points of the flow. Nil callbacks are
// skipped.
type DepositCallbacks struct {
	OnApproveTx          func(txHash string)
	OnDepositTx          func(txHash string)
	OnAttestationPending func()
}

// DepositResult reports the transaction hashes of both steps.
// AttestationReady stays false in this version; claiming happens externally.
type DepositResult struct {
	ApproveTxHash    string
	DepositTxHash    string
	AttestationReady bool
}

// Service executes xReserve deposits.
type Service interface {
	// Deposit runs approve then depositToRemote against the wallet, waiting
	// for each receipt. The caller must have switched the wallet to the
	// source chain first. A failure after a confirmed approve leaves a
	// legitimate retryable partial state; nothing is rolled back.
	Deposit(ctx context.Context, wallet chainadapter.Wallet, params DepositParams, callbacks DepositCallbacks) (DepositResult, error)
}

type service struct {
	receipts ReceiptWaiter
}

var _ Service = (*service)(nil)

// New creates a deposit service confirming transactions via the given waiter.
func New(receipts ReceiptWaiter) *service {
	return &service{receipts: receipts}
}

func (s *service) Deposit(ctx context.Context, wallet chainadapter.Wallet, params DepositParams, callbacks DepositCallbacks) (DepositResult, error) {
	if err := validator.Validate(params); err != nil {
		return DepositResult{}, err
	}

	cfg, ok := ConfigFor(params.SourceChain)
	if !ok {
		return DepositResult{}, fmt.Errorf("%w: %q", ErrUnsupportedSourceChain, params.SourceChain)
	}

	if wallet.ChainType() != networks.FamilyEVM {
		return DepositResult{}, fmt.Errorf("%w: wallet is %q", ErrEVMWalletRequired, wallet.ChainType())
	}

	provider, err := wallet.EVMProvider(ctx)
	if err != nil {
		return DepositResult{}, fmt.Errorf("%w: %w", ErrEVMWalletRequired, err)
	}

	value, err := params.Amount.BaseUnits(USDCDecimals)
	if err != nil {
		return DepositResult{}, fmt.Errorf("scaling amount to base units: %w", err)
	}

	remoteRecipient, hookData := EncodeRecipient(params.CantonRecipient)

	approveData, err := encodeApproveCall(cfg.XReserveContract, value)
	if err != nil {
		return DepositResult{}, fmt.Errorf("encoding approve call: %w", err)
	}

	approveTxHash, err := provider.SendTransaction(ctx, chainadapter.EVMTransaction{
		To:   cfg.USDCContract,
		Data: approveData,
	})
	if err != nil {
		return DepositResult{}, fmt.Errorf("submitting approve: %w", err)
	}

	if callbacks.OnApproveTx != nil {
		callbacks.OnApproveTx(approveTxHash)
	}

	if err := s.receipts.WaitForTransactionSuccess(ctx, approveTxHash); err != nil {
		return DepositResult{}, fmt.Errorf("confirming approve %s: %w", approveTxHash, err)
	}

	depositData, err := encodeDepositToRemoteCall(
		value,
		CantonRemoteDomain,
		remoteRecipient,
		cfg.USDCContract,
		new(big.Int),
		hookData,
	)
	if err != nil {
		return DepositResult{ApproveTxHash: approveTxHash}, fmt.Errorf("encoding depositToRemote call: %w", err)
	}

	depositTxHash, err := provider.SendTransaction(ctx, chainadapter.EVMTransaction{
		To:   cfg.XReserveContract,
		Data: depositData,
	})
	if err != nil {
		return DepositResult{ApproveTxHash: approveTxHash}, fmt.Errorf("submitting depositToRemote: %w", err)
	}

	if callbacks.OnDepositTx != nil {
		callbacks.OnDepositTx(depositTxHash)
	}

	if err := s.receipts.WaitForTransactionSuccess(ctx, depositTxHash); err != nil {
		return DepositResult{ApproveTxHash: approveTxHash}, fmt.Errorf("confirming depositToRemote %s: %w", depositTxHash, err)
	}

	logger.Info(ctx, "xreserve deposit confirmed, attestation pending",
		"deposit.source_chain", params.SourceChain,
		"deposit.approve_tx", approveTxHash,
		"deposit.deposit_tx", depositTxHash,
	)

	if callbacks.OnAttestationPending != nil {
		callbacks.OnAttestationPending()
	}

	return DepositResult{
		ApproveTxHash: approveTxHash,
		DepositTxHash: depositTxHash,
	}, nil
}
