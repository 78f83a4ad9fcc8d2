package server

// Request DTOs. Optional fields are pointers so that absence, null,
// and an explicit zero value are distinguishable at validation time.

type createAccountRequest struct {
	SavePrivateKey bool `json:"save_private_key"`
}

type airdropRequest struct {
	PublicKey *string  `json:"public_key"`
	AmountSOL *float64 `json:"amount_sol"`
}

type signMessageRequest struct {
	Message *string `json:"message"`
	Secret  *string `json:"secret"`
}

type verifyMessageRequest struct {
	Message   *string `json:"message"`
	Signature *string `json:"signature"`
	Pubkey    *string `json:"pubkey"`
}

type sendSolRequest struct {
	From     *string `json:"from"`
	To       *string `json:"to"`
	Lamports *uint64 `json:"lamports"`
}

type sendTokenRequest struct {
	Destination *string `json:"destination"`
	Mint        *string `json:"mint"`
	Owner       *string `json:"owner"`
	Amount      *uint64 `json:"amount"`
}

type createTokenRequest struct {
	MintAuthority *string `json:"mintAuthority"`
	Mint          *string `json:"mint"`
	Decimals      *uint8  `json:"decimals"`
}

type mintTokenRequest struct {
	Mint        *string `json:"mint"`
	Destination *string `json:"destination"`
	Authority   *string `json:"authority"`
	Amount      *uint64 `json:"amount"`
}

type transferRequest struct {
	FromPrivateKey *string  `json:"from_private_key"`
	ToPublicKey    *string  `json:"to_public_key"`
	AmountSOL      *float64 `json:"amount_sol"`
}

// Response DTOs.

type keypairResponse struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

type createAccountResponse struct {
	PublicKey  string  `json:"public_key"`
	PrivateKey *string `json:"private_key"`
	Message    string  `json:"message"`
}

type accountInfoResponse struct {
	PublicKey       string  `json:"public_key"`
	BalanceSOL      float64 `json:"balance_sol"`
	BalanceLamports uint64  `json:"balance_lamports"`
	Executable      bool    `json:"executable"`
	Owner           string  `json:"owner"`
	RentEpoch       uint64  `json:"rent_epoch"`
}

type airdropResponse struct {
	TransactionSignature string  `json:"transaction_signature"`
	PublicKey            string  `json:"public_key"`
	AmountSOL            float64 `json:"amount_sol"`
	AmountLamports       uint64  `json:"amount_lamports"`
	Message              string  `json:"message"`
}

type signMessageResponse struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

type verifyMessageResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

type sendSolResponse struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"`
}

type tokenAccountMeta struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"isSigner"`
}

type sendTokenResponse struct {
	ProgramID       string             `json:"program_id"`
	Accounts        []tokenAccountMeta `json:"accounts"`
	InstructionData string             `json:"instruction_data"`
}

type accountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type instructionResponse struct {
	ProgramID       string        `json:"program_id"`
	Accounts        []accountMeta `json:"accounts"`
	InstructionData string        `json:"instruction_data"`
}

type transferResponse struct {
	TransactionSignature string  `json:"transaction_signature"`
	FromPublicKey        string  `json:"from_public_key"`
	ToPublicKey          string  `json:"to_public_key"`
	AmountSOL            float64 `json:"amount_sol"`
	AmountLamports       uint64  `json:"amount_lamports"`
	Message              string  `json:"message"`
}
