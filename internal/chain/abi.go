package chain

// Minimal ABI fragments for the contract surfaces the sync pipeline touches.
// Only the events replayed by the reconciler and the view functions read by
// the ledger builder and resolver are declared.

// tokenABIJSON covers both bond and share token contracts
const tokenABIJSON = `[
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Transfer","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":false,"name":"targetAddress","type":"address"},{"indexed":false,"name":"lockAddress","type":"address"},{"indexed":false,"name":"amount","type":"uint256"}],"name":"Issue","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":false,"name":"targetAddress","type":"address"},{"indexed":false,"name":"lockAddress","type":"address"},{"indexed":false,"name":"amount","type":"uint256"}],"name":"Redeem","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"accountAddress","type":"address"},{"indexed":true,"name":"recipientAddress","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Unlock","type":"event"},
	{"constant":true,"inputs":[],"name":"tradableExchange","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"faceValue","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"principalValue","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"personalInfoAddress","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}
]`

// exchangeABIJSON covers the tradable exchange contract
const exchangeABIJSON = `[
	{"anonymous":false,"inputs":[{"indexed":true,"name":"token","type":"address"},{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"HolderChanged","type":"event"}
]`

// tokenSetterABIJSON covers the attribute setters used by scheduled updates
const tokenSetterABIJSON = `[
	{"constant":false,"inputs":[{"name":"faceValue","type":"uint256"}],"name":"setFaceValue","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"principalValue","type":"uint256"}],"name":"setPrincipalValue","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"transferable","type":"bool"}],"name":"setTransferable","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"status","type":"bool"}],"name":"setStatus","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}
]`

// personalInfoABIJSON covers the on-chain personal info registry
const personalInfoABIJSON = `[
	{"constant":true,"inputs":[{"name":"accountAddress","type":"address"},{"name":"linkAddress","type":"address"}],"name":"personalInfo","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"linkAddress","type":"address"},{"name":"encryptedInfo","type":"string"}],"name":"register","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}
]`
