/*
Package attestation implements write once volunteer verifications.

Registered charities attest volunteer applications and worked hours. Every
attestation is stored under the hash of the off-chain document and can
never be overwritten, so a record that was once written stays valid
forever.
*/
package attestation
