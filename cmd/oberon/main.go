// Command oberon is a small CLI around the oberon package: generate a
// keypair, issue a token for an identifier, produce a nonce-bound proof of
// possession, and open a proof against a public key.
package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/oberonauth/oberon"
	"github.com/oberonauth/oberon/internal/hexcodec"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: oberon <keygen|issue|prove|open> [flags]")
		os.Exit(1)
	}

	cmd := os.Args[1]
	cfg := NewConfig(os.Args[2:]...)
	logger := newLogger(cfg.LogLevel)

	var err error
	switch cmd {
	case "keygen":
		err = runKeygen(logger, cfg)
	case "issue":
		err = runIssue(logger, cfg, os.Args[2:])
	case "prove":
		err = runProve(logger, cfg, os.Args[2:])
	case "open":
		err = runOpen(logger, cfg, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		os.Exit(1)
	}
	if err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}

// flagValue scans args for "--name value" and returns value, or def.
func flagValue(args []string, name, def string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == name {
			return args[i+1]
		}
	}
	return def
}

func runKeygen(logger zerolog.Logger, cfg *Config) error {
	sk, err := oberon.NewSecretKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate secret key: %w", err)
	}
	pk := oberon.PublicKeyFrom(sk)

	skBytes := sk.Bytes()
	pkBytes := pk.Bytes()

	if err := os.WriteFile(cfg.KeyFile, skBytes[:], 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	logger.Info().Str("key_file", cfg.KeyFile).Msg("wrote secret key")
	fmt.Println("public_key:", hexcodec.Encode(pkBytes[:]))
	return nil
}

func loadSecretKey(path string) (oberon.SecretKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return oberon.SecretKey{}, fmt.Errorf("read key file: %w", err)
	}
	if len(raw) != oberon.SecretKeyBytes {
		return oberon.SecretKey{}, fmt.Errorf("key file has %d bytes, want %d", len(raw), oberon.SecretKeyBytes)
	}
	var data [oberon.SecretKeyBytes]byte
	copy(data[:], raw)
	sk, ok := oberon.SecretKeyFromBytes(data)
	if !ok.IsTrue() {
		return oberon.SecretKey{}, fmt.Errorf("key file contains non-canonical scalars")
	}
	return sk, nil
}

func runIssue(logger zerolog.Logger, cfg *Config, args []string) error {
	id := flagValue(args, "--id", "")
	if id == "" {
		return fmt.Errorf("--id is required")
	}
	sk, err := loadSecretKey(cfg.KeyFile)
	if err != nil {
		return err
	}
	token, ok := sk.Sign([]byte(id))
	if !ok {
		return fmt.Errorf("signing failed on a degenerate derivation, retry")
	}
	tb := token.Bytes()
	logger.Info().Str("id", id).Msg("issued token")
	fmt.Println("token:", hexcodec.Encode(tb[:]))
	return nil
}

func runProve(logger zerolog.Logger, cfg *Config, args []string) error {
	id := flagValue(args, "--id", "")
	nonce := flagValue(args, "--nonce", "")
	tokenHex := flagValue(args, "--token", "")
	if id == "" || nonce == "" || tokenHex == "" {
		return fmt.Errorf("--id, --nonce and --token are required")
	}

	tokenRaw, err := hexcodec.Decode(tokenHex)
	if err != nil {
		return fmt.Errorf("decode token: %w", err)
	}
	if len(tokenRaw) != oberon.TokenBytes {
		return fmt.Errorf("token has %d bytes, want %d", len(tokenRaw), oberon.TokenBytes)
	}
	var tokenData [oberon.TokenBytes]byte
	copy(tokenData[:], tokenRaw)
	token, ok := oberon.TokenFromBytes(tokenData)
	if !ok.IsTrue() {
		return fmt.Errorf("invalid token encoding")
	}

	proof, ok := oberon.NewProof(token, nil, []byte(id), []byte(nonce), rand.Reader)
	if !ok {
		return fmt.Errorf("proof generation failed on a degenerate derivation, retry")
	}
	pb := proof.Bytes()
	logger.Info().Str("id", id).Str("nonce", nonce).Msg("generated proof")
	fmt.Println("proof:", hexcodec.Encode(pb[:]))
	return nil
}

func runOpen(logger zerolog.Logger, cfg *Config, args []string) error {
	id := flagValue(args, "--id", "")
	nonce := flagValue(args, "--nonce", "")
	proofHex := flagValue(args, "--proof", "")
	pkHex := flagValue(args, "--public-key", "")
	if id == "" || nonce == "" || proofHex == "" || pkHex == "" {
		return fmt.Errorf("--id, --nonce, --proof and --public-key are required")
	}

	pkRaw, err := hexcodec.Decode(pkHex)
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	if len(pkRaw) != oberon.PublicKeyBytes {
		return fmt.Errorf("public key has %d bytes, want %d", len(pkRaw), oberon.PublicKeyBytes)
	}
	var pkData [oberon.PublicKeyBytes]byte
	copy(pkData[:], pkRaw)
	pk, ok := oberon.PublicKeyFromBytes(pkData)
	if !ok.IsTrue() {
		return fmt.Errorf("invalid public key encoding")
	}

	proofRaw, err := hexcodec.Decode(proofHex)
	if err != nil {
		return fmt.Errorf("decode proof: %w", err)
	}
	if len(proofRaw) != oberon.ProofBytes {
		return fmt.Errorf("proof has %d bytes, want %d", len(proofRaw), oberon.ProofBytes)
	}
	var proofData [oberon.ProofBytes]byte
	copy(proofData[:], proofRaw)
	proof, ok := oberon.ProofFromBytes(proofData)
	if !ok.IsTrue() {
		return fmt.Errorf("invalid proof encoding")
	}

	if proof.Open(pk, []byte(id), []byte(nonce)) {
		logger.Info().Str("id", id).Msg("proof valid")
		fmt.Println("valid")
		return nil
	}
	logger.Warn().Str("id", id).Msg("proof invalid")
	fmt.Println("invalid")
	os.Exit(1)
	return nil
}
