package postcodevalidator

// formats maps ISO 3166 two-letter country codes (plus a handful of codes
// used by postal authorities, such as AC, IC, KO and TA) to the format of
// that country's postal codes. An empty format means any postal code is
// accepted. Formats are matched against the whole postal code.
var formats = map[string]string{
	"AC": `ASCN 1ZZ`,                           // Ascension
	"AD": `AD[1-7]0\d`,                         // Andorra
	"AE": ``,                                   // United Arab Emirates
	"AF": `\d{4}`,                              // Afghanistan
	"AG": ``,                                   // Antigua and Barbuda
	"AI": `(?:AI-)?2640`,                       // Anguilla
	"AL": `\d{4}`,                              // Albania
	"AM": `(?:37)?\d{4}`,                       // Armenia
	"AN": ``,                                   // Netherlands Antilles
	"AO": ``,                                   // Angola
	"AQ": `BIQQ 1ZZ`,                           // Antarctica
	"AR": `((?:[A-HJ-NP-Z])?\d{4})([A-Z]{3})?`, // Argentina
	"AS": `(96799)(?:[ \-](\d{4}))?`,           // American Samoa
	"AT": `\d{4}`,                              // Austria
	"AU": `\d{4}`,                              // Australia
	"AW": ``,                                   // Aruba
	"AX": `22\d{3}`,                            // Åland
	"AZ": `\d{4}`,                              // Azerbaijan

	"BA": `\d{5}`,                 // Bosnia and Herzegowina
	"BB": `BB\d{5}`,               // Barbados
	"BD": `\d{4}`,                 // Bangladesh
	"BE": `\d{4}`,                 // Belgium
	"BF": ``,                      // Burkina Faso
	"BG": `\d{4}`,                 // Bulgaria
	"BH": `(?:\d|1[0-2])\d{2}`,    // Bahrain
	"BI": ``,                      // Burundi
	"BJ": ``,                      // Benin
	"BL": `9[78][01]\d{2}`,        // Sankt Bartholomäus
	"BM": `[A-Z]{2} ?[A-Z0-9]{2}`, // Bermuda
	"BN": `[A-Z]{2} ?\d{4}`,       // Brunei Darussalam
	"BO": ``,                      // Bolivia
	"BQ": ``,                      // Karibische Niederlande
	"BR": `\d{5}-?\d{3}`,          // Brazil
	"BS": ``,                      // Bahamas
	"BT": `\d{5}`,                 // Bhutan
	"BV": ``,                      // Bouvet Island
	"BW": ``,                      // Botswana
	"BY": `\d{6}`,                 // Belarus
	"BZ": ``,                      // Belize

	// Canada
	"CA": `[ABCEGHJKLMNPRSTVXY]\d[ABCEGHJ-NPRSTV-Z] ?\d[ABCEGHJ-NPRSTV-Z]\d`,
	"CC": `6799`,                // Cocos (Keeling) Islands
	"CD": ``,                    // Congo, Democratic Republic of
	"CF": ``,                    // Central African Republic
	"CG": ``,                    // Congo
	"CH": `\d{4}`,               // Switzerland
	"CI": ``,                    // Cote d'Ivoire
	"CK": ``,                    // Cook Islands
	"CL": `\d{7}`,               // Chile
	"CM": ``,                    // Cameroon
	"CN": `\d{6}`,               // China
	"CO": `\d{6}`,               // Colombia
	"CR": `\d{4,5}|\d{3}-\d{4}`, // Costa Rica
	"CU": `\d{5}`,               // Cuba
	"CV": `\d{4}`,               // Cape Verde
	"CW": ``,                    // Curaçao
	"CX": `6798`,                // Christmas Island
	"CY": `\d{4}`,               // Cyprus
	"CZ": `\d{3} ?\d{2}`,        // Czech Republic

	"DE": `\d{5}`, // Germany
	"DJ": ``,      // Djibouti
	"DK": `\d{4}`, // Denmark
	"DM": ``,      // Dominica
	"DO": `\d{5}`, // Dominican Republic
	"DZ": `\d{5}`, // Algeria

	"EC": `\d{6}`, // Ecuador
	"EE": `\d{5}`, // Estonia
	"EG": `\d{5}`, // Egypt
	"EH": `\d{5}`, // Western Sahara
	"ER": ``,      // Eritrea
	"ES": `\d{5}`, // Spain
	"ET": `\d{4}`, // Ethiopia

	"FI": `\d{5}`,                        // Finland
	"FJ": ``,                             // Fiji
	"FK": `FIQQ 1ZZ`,                     // Falkland Islands (Malvinas)
	"FM": `(9694[1-4])(?:[ \-](\d{4}))?`, // Micronesia
	"FO": `\d{3}`,                        // Faroe Islands
	"FR": `\d{2} ?\d{3}`,                 // France
	"FX": ``,                             // France, Metropolitan

	"GA": ``, // Gabon
	// United Kingdom
	"GB": `GIR ?0AA|(?:(?:AB|AL|B|BA|BB|BD|BF|BH|BL|BN|BR|BS|BT|BX|CA|CB|CF|CH|CM|CO|CR|CT|CV|CW|DA|DD|DE|DG|DH|DL|DN|DT|DY|E|EC|EH|EN|EX|FK|FY|G|GL|GY|GU|HA|HD|HG|HP|HR|HS|HU|HX|IG|IM|IP|IV|JE|KA|KT|KW|KY|L|LA|LD|LE|LL|LN|LS|LU|M|ME|MK|ML|N|NE|NG|NN|NP|NR|NW|OL|OX|PA|PE|PH|PL|PO|PR|RG|RH|RM|S|SA|SE|SG|SK|SL|SM|SN|SO|SP|SR|SS|ST|SW|SY|TA|TD|TF|TN|TQ|TR|TS|TW|UB|W|WA|WC|WD|WF|WN|WR|WS|WV|YO|ZE)(?:\d[\dA-Z]? ?\d[ABD-HJLN-UW-Z]{2}))|BFPO ?\d{1,4}`,
	"GD": ``,                                       // Grenada
	"GE": `\d{4}`,                                  // Georgia
	"GF": `9[78]3\d{2}`,                            // French Guiana
	"GG": `GY\d[\dA-Z]? ?\d[ABD-HJLN-UW-Z]{2}`,     // Guernsey
	"GH": ``,                                       // Ghana
	"GI": `GX11 1AA`,                               // Gibraltar
	"GL": `39\d{2}`,                                // Greenland
	"GM": ``,                                       // Gambia
	"GN": `\d{3}`,                                  // Guinea
	"GP": `9[78][01]\d{2}`,                         // Guadeloupe
	"GQ": ``,                                       // Equatorial Guinea
	"GR": `\d{3} ?\d{2}`,                           // Greece
	"GS": `SIQQ 1ZZ`,                               // South Georgia and the South Sandwich Islands
	"GT": `\d{5}`,                                  // Guatemala
	"GU": `(969(?:[12]\d|3[12]))(?:[ \-](\d{4}))?`, // Guam
	"GW": `\d{4}`,                                  // Guinea-Bissau
	"GY": ``,                                       // Guyana

	"HK": ``,              // Hong Kong
	"HM": ``,              // Heard and McDonald Islands
	"HN": `([A-Z])?\d{5}`, // Honduras
	"HR": `\d{5}`,         // Croatia
	"HT": `\d{4}`,         // Haiti
	"HU": `\d{4}`,         // Hungary

	"IC": `\d{5}`,                              // The Canary Islands
	"ID": `\d{5}`,                              // Indonesia
	"IE": `[\dA-Z]{3} ?[\dA-Z]{4}`,             // Ireland
	"IL": `\d{5}(?:\d{2})?`,                    // Israel
	"IM": `IM\d[\dA-Z]? ?\d[ABD-HJLN-UW-Z]{2}`, // Isle of Man
	"IN": `\d{6}`,                              // India
	"IO": `BBND 1ZZ`,                           // British Indian Ocean Territory
	"IQ": `\d{5}`,                              // Iraq
	"IR": `\d{5}-?\d{5}`,                       // Iran
	"IS": `\d{3}`,                              // Iceland
	"IT": `\d{5}`,                              // Italy

	"JE": `JE\d[\dA-Z]? ?\d[ABD-HJLN-UW-Z]{2}`, // Jersey
	"JM": `\d{2}`,                              // Jamaica
	"JO": `\d{5}`,                              // Jordan
	"JP": `\d{3}-?\d{4}`,                       // Japan

	"KE": `\d{5}`,      // Kenya
	"KG": `\d{6}`,      // Kyrgyzstan
	"KH": `\d{5}`,      // Cambodia
	"KI": ``,           // Kiribati
	"KM": ``,           // Comoros
	"KN": ``,           // Saint Kitts and Nevis
	"KO": ``,           // Kosovo
	"KP": ``,           // North Korea
	"KR": `\d{5}`,      // South Korea
	"KW": `\d{5}`,      // Kuwait
	"KY": `KY\d-\d{4}`, // Cayman Islands
	"KZ": `\d{6}`,      // Kazakhstan

	"LA": `\d{5}`,                     // Lao People's Democratic Republic
	"LB": `(?:\d{4})(?: ?(?:\d{4}))?`, // Lebanon
	"LC": `LC\d{2} \d{3}`,             // Saint Lucia
	"LI": `948[5-9]|949[0-8]`,         // Liechtenstein
	"LK": `\d{5}`,                     // Sri Lanka
	"LR": `\d{4}`,                     // Liberia
	"LS": `\d{3}`,                     // Lesotho
	"LT": `LV-\d{5}`,                  // Lithuania
	"LU": `\d{4}`,                     // Luxembourg
	"LV": `LV-\d{4}`,                  // Latvia
	"LY": ``,                          // Libyan Arab Jamahiriya

	"MA": `\d{5}`,                        // Morocco
	"MC": `980\d{2}`,                     // Monaco
	"MD": `MD-?\d{4}`,                    // Moldova
	"ME": `8\d{4}`,                       // Montenegro
	"MF": `9[78][01]\d{2}`,               // Saint-Martin
	"MG": `\d{3}`,                        // Madagascar
	"MH": `(969[67]\d)(?:[ \-](\d{4}))?`, // Marshall Islands
	"MK": `\d{4}`,                        // Macedonia
	"ML": ``,                             // Mali
	"MM": `\d{5}`,                        // Myanmar
	"MN": `\d{5}`,                        // Mongolia
	"MO": ``,                             // Macau
	"MP": `(9695[012])(?:[ \-](\d{4}))?`, // Saipan, Northern Mariana Islands
	"MQ": `9[78]2\d{2}`,                  // Martinique
	"MR": ``,                             // Mauritania
	"MS": ``,                             // Montserrat
	"MT": `[A-Z]{3} ?\d{2,4}`,            // Malta
	"MU": `\d{3}(?:\d{2}|[A-Z]{2}\d{3})`, // Mauritius
	"MV": `\d{5}`,                        // Maldives
	"MW": ``,                             // Malawi
	"MX": `\d{5}`,                        // Mexico
	"MY": `\d{5}`,                        // Malaysia
	"MZ": `\d{4}`,                        // Mozambique

	"NA": `\d{5}`,           // Namibia
	"NC": `988\d{2}`,        // New Caledonia
	"NE": `\d{4}`,           // Niger
	"NF": `\d{4}`,           // Norfolk Island
	"NG": `\d{6}`,           // Nigeria
	"NI": `\d{5}`,           // Nicaragua
	"NL": `\d{4} ?[A-Z]{2}`, // Netherlands
	"NO": `\d{4}`,           // Norway
	"NP": `\d{5}`,           // Nepal
	"NR": ``,                // Nauru
	"NU": ``,                // Niue
	"NZ": `\d{4}`,           // New Zealand

	"OM": `(?:PC )?\d{3}`, // Oman

	"PA": `\d{4}`,                                   // Panama
	"PE": `(?:LIMA \d{1,2}|CALLAO 0?\d)|[0-2]\d{4}`, // Peru
	"PF": `987\d{2}`,                                // French Polynesia
	"PG": `\d{3}`,                                   // Papua New Guinea
	"PH": `\d{4}`,                                   // Philippines
	"PK": `\d{5}`,                                   // Pakistan
	"PL": `\d{2}-\d{3}`,                             // Poland
	"PM": `9[78]5\d{2}`,                             // St Pierre and Miquelon
	"PN": `PCRN 1ZZ`,                                // Pitcairn
	"PR": `(00[679]\d{2})(?:[ \-](\d{4}))?`,         // Puerto Rico
	"PS": ``,                                        // Palestinian Territory
	"PT": `\d{4}-\d{3}`,                             // Portugal
	"PW": `(969(?:39|40))(?:[ \-](\d{4}))?`,         // Palau
	"PY": `\d{4}`,                                   // Paraguay

	"QA": ``, // Qatar

	"RE": `9[78]4\d{2}`, // Reunion
	"RO": `\d{6}`,       // Romania
	"RS": `\d{5,6}`,     // Serbia
	"RU": `\d{6}`,       // Russia
	"RW": ``,            // Rwanda

	"SA": `\d{5}|\d{5}-\d{4}`, // Saudi Arabia
	"SB": ``,                  // Solomon Islands
	"SC": ``,                  // Seychelles
	"SD": `\d{5}`,             // Sudan
	"SE": `\d{3} ?\d{2}`,      // Sweden
	"SG": `\d{6}`,             // Singapore
	"SH": `(?:ASCN|STHL) 1ZZ`, // St Helena
	"SI": `(SI-)?\d{4}`,       // Slovenia
	"SJ": `\d{4}`,             // Svalbard and Jan Mayen Islands
	"SK": `\d{3} ?\d{2}`,      // Slovakia
	"SL": ``,                  // Sierra Leone
	"SM": `4789\d`,            // San Marino
	"SN": `\d{5}`,             // Senegal
	"SO": `[A-Z]{2} ?\d{5}`,   // Somalia
	"SR": ``,                  // Suriname
	"SS": `\d{5}`,             // South Sudan
	"ST": ``,                  // Sao Tome and Principe
	"SV": `\d{4}`,             // El Salvador
	"SX": ``,                  // Sint Maarten
	"SY": ``,                  // Syrian Arab Republic
	"SZ": `[HLMS]\d{3}`,       // Swaziland

	"TA": `TDCU 1ZZ`,        // Tristan da Cunha
	"TC": `TKCA 1ZZ`,        // Turks and Caicos Islands
	"TD": ``,                // Chad
	"TF": ``,                // French Southern Territories
	"TG": ``,                // Togo
	"TH": `\d{5}`,           // Thailand
	"TJ": `\d{6}`,           // Tajikistan
	"TK": ``,                // Tokelau
	"TL": ``,                // East Timor
	"TM": `\d{6}`,           // Turkmenistan
	"TN": `\d{4}`,           // Tunisia
	"TO": ``,                // Tonga
	"TR": `\d{5}`,           // Turkey
	"TT": `\d{6}`,           // Trinidad and Tobago
	"TV": ``,                // Tuvalu
	"TW": `\d{3}(?:\d{2})?`, // Taiwan
	"TZ": `\d{4,5}`,         // Tanzania

	"UA": `\d{5}`,                    // Ukraine
	"UG": ``,                         // Uganda
	"UM": `96898`,                    // United States Minor Outlying Islands
	"US": `(\d{5})(?:[ \-](\d{4}))?`, // United States
	"UY": `\d{5}`,                    // Uruguay
	"UZ": `\d{6}`,                    // Uzbekistan

	"VA": `00120`,                                           // Vatican City State
	"VC": `VC\d{4}`,                                         // Saint Vincent and the Grenadines
	"VE": `\d{4}`,                                           // Venezuela
	"VG": `VG\d{4}`,                                         // Virgin Islands (British)
	"VI": `(008(?:(?:[0-4]\d)|(?:5[01])))(?:[ \-](\d{4}))?`, // Virgin Islands (US)
	"VN": `\d{6}`,                                           // Vietnam
	"VU": ``,                                                // Vanuatu

	"WF": `986\d{2}`, // Wallis and Futuna Islands
	"WS": `WS\d{4}`,  // Samoa

	"YE": ``,         // Yemen
	"YT": `976\d{2}`, // Mayotte

	"ZA": `\d{4}`, // South Africa
	"ZM": `\d{5}`, // Zambia
	"ZW": ``,      // Zimbabwe
}
