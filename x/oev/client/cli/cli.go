package cli

import (
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	tmcli "github.com/tendermint/tendermint/libs/cli"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"sigs.k8s.io/yaml"

	"github.com/GPTx-global/oev-relay/oevd/config"
	"github.com/GPTx-global/oev-relay/oevd/log"
	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// GetBidCmd returns the offline commands for preparing and checking claimant
// signatures.
func GetBidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "bid",
		Short:                      "Claimant signature subcommands",
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		NewMessageHashCmd(),
		NewSignBidCmd(),
		NewRecoverSignerCmd(),
	)

	cmd.PersistentFlags().StringP(tmcli.OutputFlag, "o", "", "Output format (text|json)")
	return cmd
}

type messageHashOutput struct {
	Message     string `json:"message"`
	MessageHash string `json:"message_hash"`
	Digest      string `json:"digest"`
}

type signatureOutput struct {
	Oracle      string `json:"oracle"`
	MessageHash string `json:"message_hash"`
	Signature   string `json:"signature"`
}

type signerOutput struct {
	Signer string `json:"signer"`
}

// NewMessageHashCmd prints the claimant message, its hash and the digest an
// oracle signs.
func NewMessageHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message-hash [beacon-id] [expire] [claimant] [bid-amount]",
		Short: "Compute the claimant message hash of a bid",
		Long:  "Compute the claimant message hash of a bid. Expire is unix seconds or +N seconds from now.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := parseBidTerms(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			hash := terms.hash()
			return printOutput(cmd, messageHashOutput{
				Message:     hexutil.Encode(types.ClaimantMessage(terms.beaconID, terms.expire, terms.claimant, terms.bid)),
				MessageHash: hash.Hex(),
				Digest:      hexutil.Encode(types.SignedDigest(hash)),
			})
		},
	}
	return cmd
}

// NewSignBidCmd signs a bid with the oracle key. With --request the bid terms
// are read from a request JSON file and the file content is printed back with
// the claimant signature filled in.
func NewSignBidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign-bid [beacon-id] [expire] [claimant] [bid-amount]",
		Short: "Sign a bid as the oracle",
		Args: func(cmd *cobra.Command, args []string) error {
			request, _ := cmd.Flags().GetString(FlagRequest)
			if request != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(4)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			keyFile, _ := cmd.Flags().GetString(FlagKeyFile)
			if keyFile == "" {
				keyFile = config.KeyFile()
			}
			key, err := crypto.LoadECDSA(keyFile)
			if err != nil {
				return fmt.Errorf("failed to load oracle key: %w", err)
			}

			request, _ := cmd.Flags().GetString(FlagRequest)
			if request != "" {
				claimant, _ := cmd.Flags().GetString(FlagClaimant)
				doc, err := signRequestFile(request, claimant, key)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(doc))
				return err
			}

			terms, err := parseBidTerms(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			sig, err := types.SignClaimantMessage(key, terms.beaconID, terms.expire, terms.claimant, terms.bid)
			if err != nil {
				return err
			}
			log.Debugf("signed bid of %s on %s until %d", terms.bid, terms.beaconID.Hex(), terms.expire)

			return printOutput(cmd, signatureOutput{
				Oracle:      crypto.PubkeyToAddress(key.PublicKey).Hex(),
				MessageHash: terms.hash().Hex(),
				Signature:   hexutil.Encode(sig),
			})
		},
	}

	cmd.Flags().String(FlagKeyFile, "", "Hex encoded oracle private key file (defaults to the configured key file)")
	cmd.Flags().String(FlagRequest, "", "Beacon update request JSON to sign in place")
	cmd.Flags().String(FlagClaimant, "", "Claimant address used with --request")
	return cmd
}

// NewRecoverSignerCmd prints the oracle address that produced a claimant
// signature.
func NewRecoverSignerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover-signer [beacon-id] [expire] [claimant] [bid-amount] [signature]",
		Short: "Recover the oracle that signed a bid",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := parseBidTerms(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			sig, err := hexutil.Decode(args[4])
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}

			signer := types.RecoverClaimantSigner(terms.beaconID, terms.expire, terms.claimant, terms.bid, sig)
			if signer == (common.Address{}) {
				return types.ErrInvalidSignature
			}

			return printOutput(cmd, signerOutput{Signer: signer.Hex()})
		},
	}
	return cmd
}

// signRequestFile reads the bid terms from a request document and returns the
// document with claimant_signature set. A missing expire_timestamp is filled in
// with the configured validity.
func signRequestFile(path, claimant string, key *ecdsa.PrivateKey) ([]byte, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request: %w", err)
	}
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("request %s is not valid JSON", path)
	}
	if claimant == "" {
		return nil, fmt.Errorf("--%s is required with --%s", FlagClaimant, FlagRequest)
	}

	expire := gjson.GetBytes(doc, "expire_timestamp")
	if !expire.Exists() || expire.Uint() == 0 {
		validity := config.BidValidity()
		if validity == 0 {
			return nil, fmt.Errorf("request has no expire_timestamp and no bid validity is configured")
		}
		doc, err = sjson.SetBytes(doc, "expire_timestamp", uint64(now().Unix())+validity)
		if err != nil {
			return nil, err
		}
		expire = gjson.GetBytes(doc, "expire_timestamp")
	}

	terms, err := parseBidTerms(
		gjson.GetBytes(doc, "beacon_id").String(),
		expire.String(),
		claimant,
		gjson.GetBytes(doc, "bid_amount").String(),
	)
	if err != nil {
		return nil, err
	}

	sig, err := types.SignClaimantMessage(key, terms.beaconID, terms.expire, terms.claimant, terms.bid)
	if err != nil {
		return nil, err
	}

	// []byte fields use the encoding/json base64 form
	return sjson.SetBytes(doc, "claimant_signature", base64.StdEncoding.EncodeToString(sig))
}

func printOutput(cmd *cobra.Command, v interface{}) error {
	format, _ := cmd.Flags().GetString(tmcli.OutputFlag)
	if format == "" {
		format = config.OutputFormat()
	}

	var (
		out []byte
		err error
	)
	switch format {
	case config.OutputJSON:
		out, err = json.MarshalIndent(v, "", "  ")
	case config.OutputText, "":
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
