package i18n

// Translation keys.
const (
	Wallet Key = iota
	Exchange
	Transfers
	Insights
	Settings
	PortfolioOverview
	GlobalCurrencyPositions
	TotalPortfolioValue
	Balance
	ThisMonth
	HideBalances
	ShowBalances
	BalancesHidden
	BalancesShown
	RecentActivity
	LatestTransactions
	ViewAllTransactions
	LiveExchangeRates
	RealTimeRates
	LastUpdate
	BankRate
	OurAdvantage
	QuickExchange
	From
	To
	ExchangeNow
	RatesUpdated
	Encrypted
	OpenMenu
	CloseMenu
	ExpandMenu
	CollapseMenu
	Loading
	Error
	Success
	Warning
	Info
	SomethingWentWrong
	UnexpectedError
	TryAgain
	ReloadPage
	ErrorDetails
	IfProblemPersists
	ComingSoon
	InternationalTransfers
	InternationalTransfersDesc
	FinancialInsights
	FinancialInsightsDesc
	SettingsDesc
	TransferSent
	TransferFailed
	TransferInProgress
	NameRequired
	MinTwoChars
	EmailRequired
	InvalidEmail
	CountryRequired
	BankRequired
	AccountRequired
	MinEightChars
	AmountRequired
	MinAmount
	MaxAmount
	PurposeRequired

	numKeys
)

var keyNames = [numKeys]string{
	Wallet: "wallet",
	Exchange: "exchange",
	Transfers: "transfers",
	Insights: "insights",
	Settings: "settings",
	PortfolioOverview: "portfolioOverview",
	GlobalCurrencyPositions: "globalCurrencyPositions",
	TotalPortfolioValue: "totalPortfolioValue",
	Balance: "balance",
	ThisMonth: "thisMonth",
	HideBalances: "hideBalances",
	ShowBalances: "showBalances",
	BalancesHidden: "balancesHidden",
	BalancesShown: "balancesShown",
	RecentActivity: "recentActivity",
	LatestTransactions: "latestTransactions",
	ViewAllTransactions: "viewAllTransactions",
	LiveExchangeRates: "liveExchangeRates",
	RealTimeRates: "realTimeRates",
	LastUpdate: "lastUpdate",
	BankRate: "bankRate",
	OurAdvantage: "ourAdvantage",
	QuickExchange: "quickExchange",
	From: "from",
	To: "to",
	ExchangeNow: "exchangeNow",
	RatesUpdated: "ratesUpdated",
	Encrypted: "encrypted",
	OpenMenu: "openMenu",
	CloseMenu: "closeMenu",
	ExpandMenu: "expandMenu",
	CollapseMenu: "collapseMenu",
	Loading: "loading",
	Error: "error",
	Success: "success",
	Warning: "warning",
	Info: "info",
	SomethingWentWrong: "somethingWentWrong",
	UnexpectedError: "unexpectedError",
	TryAgain: "tryAgain",
	ReloadPage: "reloadPage",
	ErrorDetails: "errorDetails",
	IfProblemPersists: "ifProblemPersists",
	ComingSoon: "comingSoon",
	InternationalTransfers: "internationalTransfers",
	InternationalTransfersDesc: "internationalTransfersDesc",
	FinancialInsights: "financialInsights",
	FinancialInsightsDesc: "financialInsightsDesc",
	SettingsDesc: "settingsDesc",
	TransferSent: "transferSent",
	TransferFailed: "transferFailed",
	TransferInProgress: "transferInProgress",
	NameRequired: "nameRequired",
	MinTwoChars: "minTwoChars",
	EmailRequired: "emailRequired",
	InvalidEmail: "invalidEmail",
	CountryRequired: "countryRequired",
	BankRequired: "bankRequired",
	AccountRequired: "accountRequired",
	MinEightChars: "minEightChars",
	AmountRequired: "amountRequired",
	MinAmount: "minAmount",
	MaxAmount: "maxAmount",
	PurposeRequired: "purposeRequired",
}
