package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract/marketplace"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

var programID = solana.MustPublicKeyFromBase58("Hd98jmFudemVPbdArdHmCSTWayaqhhsgwAUd3abNC8DB")

func main() {
	_ = godotenv.Load()
	sdk.InitLogger(os.Getenv("DEBUG") == "true")

	app := &cli.App{
		Name:  "marketplace",
		Usage: "run the listing engine against an in-memory host",
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "play a full list / purchase round between three wallets",
				Action: runDemo,
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "price", Value: 2_000_000, Usage: "listing price in lamports"},
					&cli.UintFlag{Name: "fee", Value: 500, Usage: "marketplace fee in basis points"},
				},
			},
			{
				Name:   "derive",
				Usage:  "print the derived addresses for a marketplace name",
				Action: runDerive,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.L().With(zap.Error(err)).Fatal("command failed")
	}
}

func runDemo(c *cli.Context) error {
	host := sdk.NewMemoryHost()
	mkt := marketplace.New(programID, host.Runtime)

	admin := solana.NewWallet().PublicKey()
	maker := solana.NewWallet().PublicKey()
	buyer := solana.NewWallet().PublicKey()
	for _, w := range []solana.PublicKey{admin, maker, buyer} {
		host.System.Airdrop(w, 10*solana.LAMPORTS_PER_SOL)
	}

	now := time.Now().Unix()
	env := func(caller solana.PublicKey) sdk.Env { return sdk.NewEnv(caller, 1, now) }

	market, err := mkt.Initialize(env(admin), "demo", uint16(c.Uint("fee")))
	if err != nil {
		return err
	}

	// Mint one asset to the maker and mark its provenance verified.
	mint := solana.NewWallet().PublicKey()
	collection := solana.NewWallet().PublicKey()
	if err := host.Tokens.CreateMint(env(admin), mint, admin, 0); err != nil {
		return err
	}
	if _, err := host.Tokens.EnsureAccount(env(maker), maker, mint, maker); err != nil {
		return err
	}
	if err := host.Tokens.MintTo(env(admin), mint, maker, 1, nil); err != nil {
		return err
	}
	host.Metadata.SetCollection(mint, collection, true)

	if _, err := mkt.List(env(maker), market, mint, collection, c.Uint64("price")); err != nil {
		return err
	}
	if err := mkt.Purchase(env(buyer), market, mint); err != nil {
		return err
	}

	treasury, _, err := mkt.TreasuryAddress(market)
	if err != nil {
		return err
	}
	zap.S().Infow("settled",
		"asset", mint,
		"buyerHolds", host.Tokens.Balance(buyer, mint),
		"makerLamports", host.System.Balance(maker),
		"treasuryLamports", host.System.Balance(treasury),
	)
	return nil
}

func runDerive(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("usage: derive <marketplace-name>")
	}

	mkt := marketplace.New(programID, nil)
	market, bump, err := mkt.MarketplaceAddress(name)
	if err != nil {
		return err
	}
	treasury, _, err := mkt.TreasuryAddress(market)
	if err != nil {
		return err
	}
	rewards, _, err := mkt.RewardsMintAddress(market)
	if err != nil {
		return err
	}

	fmt.Printf("marketplace: %s (bump %d)\n", market, bump)
	fmt.Printf("treasury:    %s\n", treasury)
	fmt.Printf("rewards:     %s\n", rewards)
	return nil
}
