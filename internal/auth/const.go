package auth

type SessionKey string

var (
	SessionKeyIdentity           SessionKey = "identity"
	SessionKeyAuthenticated      SessionKey = "authenticated"
	SessionKeyRedirectAfterLogin SessionKey = "redirect_after_login"
	SessionKeyOauthNonce         SessionKey = "oauth_nonce"
	SessionKeyOauthCodeVerifier  SessionKey = "oauth_code_verifier"
)

// The OIDC session slots cleared together on logout. Partial clearing can
// leave a stale identity reachable, so Logout enumerates all of them.
var (
	SessionKeyAccessToken           SessionKey = "oidc_access_token"
	SessionKeyIDTokenClaims         SessionKey = "oidc_id_token_claims"
	SessionKeyUserInfoExpiration    SessionKey = "oidc_userinfo_expiration"
	SessionKeyAuthorizationEndpoint SessionKey = "oidc_endpoint_authorization"
	SessionKeyTokenEndpoint         SessionKey = "oidc_endpoint_token"
	SessionKeyUserInfoEndpoint      SessionKey = "oidc_endpoint_userinfo"
	SessionKeyIDTokenClaimsCache    SessionKey = "oidc_id_token_claims_cache"
	SessionKeyInitialRequest        SessionKey = "oidc_initial_request"
	SessionKeyProviderURL           SessionKey = "oidc_provider_url"
	SessionKeyOauthState            SessionKey = "oidc_state"
	SessionKeyUsernameTemplate      SessionKey = "oidc_username_template"
	SessionKeyRequestedClaims       SessionKey = "oidc_requested_claims"
)

var oidcSessionKeys = []SessionKey{
	SessionKeyAccessToken,
	SessionKeyIDTokenClaims,
	SessionKeyUserInfoExpiration,
	SessionKeyAuthorizationEndpoint,
	SessionKeyTokenEndpoint,
	SessionKeyUserInfoEndpoint,
	SessionKeyIDTokenClaimsCache,
	SessionKeyInitialRequest,
	SessionKeyProviderURL,
	SessionKeyOauthState,
	SessionKeyUsernameTemplate,
	SessionKeyRequestedClaims,
	SessionKeyOauthNonce,
	SessionKeyOauthCodeVerifier,
	SessionKeyIdentity,
	SessionKeyAuthenticated,
}
