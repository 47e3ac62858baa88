package ledger

import (
	"context"
	"fmt"
	"sync"

	"ecertify/pkg/logger"
	reasoncodes "ecertify/pkg/reason_codes"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// spl-memo program
var memoProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

// SolanaClient writes each record as a memo transaction paid and signed by the payer key.
type SolanaClient struct {
	mu        sync.Mutex
	RpcClient *rpc.Client
	payer     solana.PrivateKey
}

func NewSolanaClient(rpcEndpoint, payerKeypairPath string) (*SolanaClient, error) {
	payer, err := solana.PrivateKeyFromSolanaKeygenFile(payerKeypairPath)
	if err != nil {
		return nil, fmt.Errorf("reading payer keypair from %s failed: %w", payerKeypairPath, err)
	}

	logger.Default().Debugf("Ledger payer: %s", payer.PublicKey().String())
	return &SolanaClient{
		RpcClient: rpc.New(rpcEndpoint),
		payer:     payer,
	}, nil
}

func (sc *SolanaClient) Payer() solana.PublicKey {
	return sc.payer.PublicKey()
}

// BuildMemoTransaction returns the unsigned memo transaction carrying record.
func (sc *SolanaClient) BuildMemoTransaction(record Record, blockhash solana.Hash) (*solana.Transaction, error) {
	memo, err := record.Serialize()
	if err != nil {
		return nil, err
	}

	instruction := solana.NewInstruction(
		memoProgramID,
		solana.AccountMetaSlice{solana.NewAccountMeta(sc.payer.PublicKey(), false, true)},
		memo,
	)

	return solana.NewTransaction(
		[]solana.Instruction{instruction},
		blockhash,
		solana.TransactionPayer(sc.payer.PublicKey()),
	)
}

func (sc *SolanaClient) Anchor(ctx context.Context, record Record) (string, error) {
	// one memo in flight per payer
	sc.mu.Lock()
	defer sc.mu.Unlock()

	latest, err := sc.RpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", reasoncodes.Wrap(reasoncodes.ErrLedger, err, "could not fetch latest blockhash")
	}

	tx, err := sc.BuildMemoTransaction(record, latest.Value.Blockhash)
	if err != nil {
		return "", reasoncodes.Wrap(reasoncodes.ErrLedger, err, "could not build memo transaction")
	}

	_, err = tx.Sign(func(pk solana.PublicKey) *solana.PrivateKey {
		if pk.Equals(sc.payer.PublicKey()) {
			return &sc.payer
		}
		return nil
	})
	if err != nil {
		return "", reasoncodes.Wrap(reasoncodes.ErrLedger, err, "could not sign memo transaction")
	}

	signature, err := sc.RpcClient.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return "", reasoncodes.Wrap(reasoncodes.ErrLedger, err, "could not send memo for certificate %d", record.CertificateId)
	}

	logger.Default().Infof("Anchored certificate %d with signature %s", record.CertificateId, signature.String())
	return signature.String(), nil
}
