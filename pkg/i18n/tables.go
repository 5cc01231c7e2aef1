package i18n

var tables = map[Language]map[Key]string{
	Spanish: {
		Wallet:                     "Cartera",
		Exchange:                   "Intercambio",
		Transfers:                  "Transferencias",
		Insights:                   "Análisis",
		Settings:                   "Configuración",
		PortfolioOverview:          "Resumen del Portafolio",
		GlobalCurrencyPositions:    "Tus posiciones de moneda global",
		TotalPortfolioValue:        "Valor Total del Portafolio",
		Balance:                    "Balance",
		ThisMonth:                  "este mes",
		HideBalances:               "Ocultar balances",
		ShowBalances:               "Mostrar balances",
		BalancesHidden:             "Balances ocultados",
		BalancesShown:              "Balances mostrados",
		RecentActivity:             "Actividad Reciente",
		LatestTransactions:         "Tus últimas transacciones en todas las monedas",
		ViewAllTransactions:        "Ver Todas las Transacciones",
		LiveExchangeRates:          "Tipos de Cambio en Vivo",
		RealTimeRates:              "Tasas en tiempo real vs bancos principales",
		LastUpdate:                 "Última actualización",
		BankRate:                   "Tasa Bancaria",
		OurAdvantage:               "Nuestra Ventaja",
		QuickExchange:              "Intercambio Rápido",
		From:                       "Desde",
		To:                         "Hasta",
		ExchangeNow:                "Intercambiar Ahora",
		RatesUpdated:               "Tipos de cambio actualizados",
		Encrypted:                  "Encriptado",
		OpenMenu:                   "Abrir menú",
		CloseMenu:                  "Cerrar menú",
		ExpandMenu:                 "Expandir menú",
		CollapseMenu:               "Contraer menú",
		Loading:                    "Cargando...",
		Error:                      "Error",
		Success:                    "Éxito",
		Warning:                    "Advertencia",
		Info:                       "Información",
		SomethingWentWrong:         "¡Ups! Algo salió mal",
		UnexpectedError:            "Ha ocurrido un error inesperado. No te preocupes, tus datos están seguros.",
		TryAgain:                   "Intentar de nuevo",
		ReloadPage:                 "Recargar página",
		ErrorDetails:               "Detalles del error (desarrollo)",
		IfProblemPersists:          "Si el problema persiste, contacta al soporte técnico.",
		ComingSoon:                 "Próximamente",
		InternationalTransfers:     "Transferencias Internacionales",
		InternationalTransfersDesc: "Próximamente - Envía dinero globalmente con seguimiento de viaje animado",
		FinancialInsights:          "Análisis Financiero",
		FinancialInsightsDesc:      "Próximamente - Análisis avanzado e insights de gastos",
		SettingsDesc:               "Próximamente - Configuración de cuenta y preferencias",
		TransferSent:               "Transferencia enviada exitosamente",
		TransferFailed:             "Error al procesar la transferencia",
		TransferInProgress:         "Ya hay una transferencia en curso",
		NameRequired:               "El nombre es requerido",
		MinTwoChars:                "Mínimo 2 caracteres",
		EmailRequired:              "El email es requerido",
		InvalidEmail:               "Email inválido",
		CountryRequired:            "El país es requerido",
		BankRequired:               "El banco es requerido",
		AccountRequired:            "El número de cuenta es requerido",
		MinEightChars:              "Mínimo 8 caracteres",
		AmountRequired:             "El monto es requerido",
		MinAmount:                  "Mínimo $1",
		MaxAmount:                  "Máximo $100,000",
		PurposeRequired:            "El propósito es requerido",
	},
	English: {
		Wallet:                     "Wallet",
		Exchange:                   "Exchange",
		Transfers:                  "Transfers",
		Insights:                   "Insights",
		Settings:                   "Settings",
		PortfolioOverview:          "Portfolio Overview",
		GlobalCurrencyPositions:    "Your global currency positions",
		TotalPortfolioValue:        "Total Portfolio Value",
		Balance:                    "Balance",
		ThisMonth:                  "this month",
		HideBalances:               "Hide balances",
		ShowBalances:               "Show balances",
		BalancesHidden:             "Balances hidden",
		BalancesShown:              "Balances shown",
		RecentActivity:             "Recent Activity",
		LatestTransactions:         "Your latest transactions across all currencies",
		ViewAllTransactions:        "View All Transactions",
		LiveExchangeRates:          "Live Exchange Rates",
		RealTimeRates:              "Real-time rates vs major banks",
		LastUpdate:                 "Last update",
		BankRate:                   "Bank Rate",
		OurAdvantage:               "Our Advantage",
		QuickExchange:              "Quick Exchange",
		From:                       "From",
		To:                         "To",
		ExchangeNow:                "Exchange Now",
		RatesUpdated:               "Exchange rates updated",
		Encrypted:                  "Encrypted",
		OpenMenu:                   "Open menu",
		CloseMenu:                  "Close menu",
		ExpandMenu:                 "Expand menu",
		CollapseMenu:               "Collapse menu",
		Loading:                    "Loading...",
		Error:                      "Error",
		Success:                    "Success",
		Warning:                    "Warning",
		Info:                       "Info",
		SomethingWentWrong:         "Oops! Something went wrong",
		UnexpectedError:            "An unexpected error has occurred. Don't worry, your data is safe.",
		TryAgain:                   "Try again",
		ReloadPage:                 "Reload page",
		ErrorDetails:               "Error details (development)",
		IfProblemPersists:          "If the problem persists, contact technical support.",
		ComingSoon:                 "Coming Soon",
		InternationalTransfers:     "International Transfers",
		InternationalTransfersDesc: "Coming soon - Send money globally with animated journey tracking",
		FinancialInsights:          "Financial Insights",
		FinancialInsightsDesc:      "Coming soon - Advanced analytics and spending insights",
		SettingsDesc:               "Coming soon - Account settings and preferences",
		TransferSent:               "Transfer sent successfully",
		TransferFailed:             "Error processing the transfer",
		TransferInProgress:         "A transfer is already in progress",
		NameRequired:               "Name is required",
		MinTwoChars:                "Minimum 2 characters",
		EmailRequired:              "Email is required",
		InvalidEmail:               "Invalid email",
		CountryRequired:            "Country is required",
		BankRequired:               "Bank is required",
		AccountRequired:            "Account number is required",
		MinEightChars:              "Minimum 8 characters",
		AmountRequired:             "Amount is required",
		MinAmount:                  "Minimum $1",
		MaxAmount:                  "Maximum $100,000",
		PurposeRequired:            "Purpose is required",
	},
	French: {
		Wallet:                     "Portefeuille",
		Exchange:                   "Échange",
		Transfers:                  "Transferts",
		Insights:                   "Analyses",
		Settings:                   "Paramètres",
		PortfolioOverview:          "Aperçu du Portefeuille",
		GlobalCurrencyPositions:    "Vos positions de devises mondiales",
		TotalPortfolioValue:        "Valeur Totale du Portefeuille",
		Balance:                    "Solde",
		ThisMonth:                  "ce mois-ci",
		HideBalances:               "Masquer les soldes",
		ShowBalances:               "Afficher les soldes",
		BalancesHidden:             "Soldes masqués",
		BalancesShown:              "Soldes affichés",
		RecentActivity:             "Activité Récente",
		LatestTransactions:         "Vos dernières transactions dans toutes les devises",
		ViewAllTransactions:        "Voir Toutes les Transactions",
		LiveExchangeRates:          "Taux de Change en Direct",
		RealTimeRates:              "Taux en temps réel vs banques principales",
		LastUpdate:                 "Dernière mise à jour",
		BankRate:                   "Taux Bancaire",
		OurAdvantage:               "Notre Avantage",
		QuickExchange:              "Échange Rapide",
		From:                       "De",
		To:                         "Vers",
		ExchangeNow:                "Échanger Maintenant",
		RatesUpdated:               "Taux de change mis à jour",
		Encrypted:                  "Chiffré",
		OpenMenu:                   "Ouvrir le menu",
		CloseMenu:                  "Fermer le menu",
		ExpandMenu:                 "Développer le menu",
		CollapseMenu:               "Réduire le menu",
		Loading:                    "Chargement...",
		Error:                      "Erreur",
		Success:                    "Succès",
		Warning:                    "Avertissement",
		Info:                       "Info",
		SomethingWentWrong:         "Oups! Quelque chose s'est mal passé",
		UnexpectedError:            "Une erreur inattendue s'est produite. Ne vous inquiétez pas, vos données sont sûres.",
		TryAgain:                   "Réessayer",
		ReloadPage:                 "Recharger la page",
		ErrorDetails:               "Détails de l'erreur (développement)",
		IfProblemPersists:          "Si le problème persiste, contactez le support technique.",
		ComingSoon:                 "Bientôt Disponible",
		InternationalTransfers:     "Transferts Internationaux",
		InternationalTransfersDesc: "Bientôt disponible - Envoyez de l'argent dans le monde entier avec suivi de voyage animé",
		FinancialInsights:          "Analyses Financières",
		FinancialInsightsDesc:      "Bientôt disponible - Analyses avancées et insights de dépenses",
		SettingsDesc:               "Bientôt disponible - Paramètres de compte et préférences",
		TransferSent:               "Transfert envoyé avec succès",
		TransferFailed:             "Erreur lors du traitement du transfert",
		TransferInProgress:         "Un transfert est déjà en cours",
		NameRequired:               "Le nom est requis",
		MinTwoChars:                "Minimum 2 caractères",
		EmailRequired:              "L'e-mail est requis",
		InvalidEmail:               "E-mail invalide",
		CountryRequired:            "Le pays est requis",
		BankRequired:               "La banque est requise",
		AccountRequired:            "Le numéro de compte est requis",
		MinEightChars:              "Minimum 8 caractères",
		AmountRequired:             "Le montant est requis",
		MinAmount:                  "Minimum 1 $",
		MaxAmount:                  "Maximum 100 000 $",
		PurposeRequired:            "L'objet est requis",
	},
	German: {
		Wallet:                     "Brieftasche",
		Exchange:                   "Austausch",
		Transfers:                  "Überweisungen",
		Insights:                   "Einblicke",
		Settings:                   "Einstellungen",
		PortfolioOverview:          "Portfolio-Übersicht",
		GlobalCurrencyPositions:    "Ihre globalen Währungspositionen",
		TotalPortfolioValue:        "Gesamter Portfolio-Wert",
		Balance:                    "Guthaben",
		ThisMonth:                  "diesen Monat",
		HideBalances:               "Guthaben ausblenden",
		ShowBalances:               "Guthaben anzeigen",
		BalancesHidden:             "Guthaben ausgeblendet",
		BalancesShown:              "Guthaben angezeigt",
		RecentActivity:             "Aktuelle Aktivität",
		LatestTransactions:         "Ihre neuesten Transaktionen in allen Währungen",
		ViewAllTransactions:        "Alle Transaktionen Anzeigen",
		LiveExchangeRates:          "Live-Wechselkurse",
		RealTimeRates:              "Echtzeit-Kurse vs. große Banken",
		LastUpdate:                 "Letzte Aktualisierung",
		BankRate:                   "Bankkurs",
		OurAdvantage:               "Unser Vorteil",
		QuickExchange:              "Schneller Austausch",
		From:                       "Von",
		To:                         "Nach",
		ExchangeNow:                "Jetzt Tauschen",
		RatesUpdated:               "Wechselkurse aktualisiert",
		Encrypted:                  "Verschlüsselt",
		OpenMenu:                   "Menü öffnen",
		CloseMenu:                  "Menü schließen",
		ExpandMenu:                 "Menü erweitern",
		CollapseMenu:               "Menü reduzieren",
		Loading:                    "Laden...",
		Error:                      "Fehler",
		Success:                    "Erfolg",
		Warning:                    "Warnung",
		Info:                       "Info",
		SomethingWentWrong:         "Ups! Etwas ist schiefgelaufen",
		UnexpectedError:            "Ein unerwarteter Fehler ist aufgetreten. Keine Sorge, Ihre Daten sind sicher.",
		TryAgain:                   "Erneut versuchen",
		ReloadPage:                 "Seite neu laden",
		ErrorDetails:               "Fehlerdetails (Entwicklung)",
		IfProblemPersists:          "Wenn das Problem weiterhin besteht, wenden Sie sich an den technischen Support.",
		ComingSoon:                 "Demnächst Verfügbar",
		InternationalTransfers:     "Internationale Überweisungen",
		InternationalTransfersDesc: "Demnächst verfügbar - Senden Sie Geld weltweit mit animierter Reiseverfolgung",
		FinancialInsights:          "Finanzielle Einblicke",
		FinancialInsightsDesc:      "Demnächst verfügbar - Erweiterte Analysen und Ausgabeneinblicke",
		SettingsDesc:               "Demnächst verfügbar - Kontoeinstellungen und Präferenzen",
		TransferSent:               "Überweisung erfolgreich gesendet",
		TransferFailed:             "Fehler bei der Verarbeitung der Überweisung",
		TransferInProgress:         "Eine Überweisung läuft bereits",
		NameRequired:               "Der Name ist erforderlich",
		MinTwoChars:                "Mindestens 2 Zeichen",
		EmailRequired:              "Die E-Mail ist erforderlich",
		InvalidEmail:               "Ungültige E-Mail",
		CountryRequired:            "Das Land ist erforderlich",
		BankRequired:               "Die Bank ist erforderlich",
		AccountRequired:            "Die Kontonummer ist erforderlich",
		MinEightChars:              "Mindestens 8 Zeichen",
		AmountRequired:             "Der Betrag ist erforderlich",
		MinAmount:                  "Mindestens 1 $",
		MaxAmount:                  "Höchstens 100.000 $",
		PurposeRequired:            "Der Zweck ist erforderlich",
	},
}
